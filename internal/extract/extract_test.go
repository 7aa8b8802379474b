package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vue-class-migrator/internal/diagnostic"
	"vue-class-migrator/internal/source"
)

func parseUnit(t *testing.T, src string) *source.Unit {
	t.Helper()

	unit, err := source.Parse(context.Background(), "fixture.ts", []byte(src))
	require.NoError(t, err)

	return unit
}

func TestExtract_NoComponent(t *testing.T) {
	unit := parseUnit(t, `export class Plain {
  value = 1;
}
`)

	var diags diagnostic.Diagnostics

	model, ok := Extract(unit, &diags)
	assert.False(t, ok)
	assert.Nil(t, model)
}

func TestExtract_ComponentModel(t *testing.T) {
	unit := parseUnit(t, `import { Component, Prop, Vue } from 'vue-property-decorator';

/**
 * A widget.
 */
@Component({
  inheritAttrs: false,
  name: 'ignored',
  inheritAttrs: true,
})
export default class Widget extends Vue {
  /** The label. */
  @Prop({ default: 'hi', required: true }) label!: string;

  @Prop() size!: number;

  count: number = 0;

  items = [];

  get doubled(): number {
    return this.count * 2;
  }

  get fullName() {
    return this.first;
  }

  set fullName(value: string) {
    this.first = value;
  }
}
`)

	var diags diagnostic.Diagnostics

	model, ok := Extract(unit, &diags)
	require.True(t, ok)

	assert.Equal(t, "Widget", model.Name)
	assert.Equal(t, []string{"/**", "* A widget.", "*/"}, model.Doc)

	// Passthrough entries keep source order and duplicates.
	require.Len(t, model.Passthrough, 3)
	assert.Equal(t, OptionEntry{Key: "inheritAttrs", Value: "false"}, model.Passthrough[0])
	assert.Equal(t, OptionEntry{Key: "name", Value: "'ignored'"}, model.Passthrough[1])
	assert.Equal(t, OptionEntry{Key: "inheritAttrs", Value: "true"}, model.Passthrough[2])

	require.Len(t, model.Props, 2)
	assert.Equal(t, "label", model.Props[0].Name)
	assert.Equal(t, "string", model.Props[0].Type)
	assert.Equal(t, "'hi'", model.Props[0].Default)
	assert.Equal(t, "true", model.Props[0].Required)
	assert.Equal(t, []string{"/** The label. */"}, model.Props[0].Doc)
	assert.Equal(t, "size", model.Props[1].Name)
	assert.Empty(t, model.Props[1].Default)
	assert.Empty(t, model.Props[1].Required)

	require.Len(t, model.Data, 2)
	assert.Equal(t, DataFieldModel{Name: "count", Type: "number", Initializer: "0"}, model.Data[0])
	assert.Equal(t, "items", model.Data[1].Name)
	assert.Empty(t, model.Data[1].Type)
	assert.Equal(t, "[]", model.Data[1].Initializer)

	assert.Equal(t, []string{"doubled", "fullName"}, model.ComputedOrder)

	doubled := model.Computed["doubled"]
	require.NotNil(t, doubled.Getter)
	assert.Nil(t, doubled.Setter)
	assert.Equal(t, "number", doubled.Getter.ReturnType)
	assert.Equal(t, []string{"return this.count * 2;"}, doubled.Getter.Statements)

	fullName := model.Computed["fullName"]
	require.NotNil(t, fullName.Getter)
	require.NotNil(t, fullName.Setter)
	assert.Empty(t, fullName.Getter.ReturnType)
	assert.Equal(t, "value", fullName.Setter.ParamName)
	assert.Equal(t, "string", fullName.Setter.ParamType)
}

func TestExtract_SpanCoversDocComment(t *testing.T) {
	src := `/** Documented. */
@Component
class Doc {
}
`
	unit := parseUnit(t, src)

	var diags diagnostic.Diagnostics

	model, ok := Extract(unit, &diags)
	require.True(t, ok)

	assert.Equal(t, uint32(0), model.Start, "replaced span starts at the doc comment")
	assert.Equal(t, "}", string(unit.Text()[model.End-1:model.End]))
}

func TestExtract_FieldWithoutInitializer(t *testing.T) {
	unit := parseUnit(t, `@Component
class Sparse {
  missing: string;
}
`)

	var diags diagnostic.Diagnostics

	model, ok := Extract(unit, &diags)
	require.True(t, ok)

	assert.Empty(t, model.Data)
	assert.True(t, diags.HasCode(diagnostic.CodeDataFieldWithoutInit))
}

func TestExtract_UnsupportedMembersWarn(t *testing.T) {
	unit := parseUnit(t, `@Component
class Methods {
  count = 1;

  reset(): void {
    this.count = 0;
  }
}
`)

	var diags diagnostic.Diagnostics

	model, ok := Extract(unit, &diags)
	require.True(t, ok)

	assert.Len(t, model.Data, 1)
	assert.Empty(t, model.ComputedOrder)
	assert.True(t, diags.HasCode(diagnostic.CodeUnsupportedMember))
}

func TestExtract_MultiLineBodyStatements(t *testing.T) {
	unit := parseUnit(t, `@Component
class Body {
  get rows(): string[] {
    // keep comments
    return [
      'a',
      'b',
    ];
  }
}
`)

	var diags diagnostic.Diagnostics

	model, ok := Extract(unit, &diags)
	require.True(t, ok)

	getter := model.Computed["rows"].Getter
	require.NotNil(t, getter)
	require.Len(t, getter.Statements, 2)
	assert.Equal(t, "// keep comments", getter.Statements[0])
	assert.Equal(t, "return [\n  'a',\n  'b',\n];", getter.Statements[1])
}
