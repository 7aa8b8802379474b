package imports

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vue-class-migrator/internal/source"
)

func parseUnit(t *testing.T, src string) *source.Unit {
	t.Helper()

	unit, err := source.Parse(context.Background(), "fixture.ts", []byte(src))
	require.NoError(t, err)

	return unit
}

func apply(t *testing.T, unit *source.Unit) string {
	t.Helper()

	require.NoError(t, unit.Apply(context.Background()))

	return unit.String()
}

func TestEnsure_ExtendsExistingNamedImports(t *testing.T) {
	unit := parseUnit(t, `import { ref } from 'vue';

const count = ref(0);
`)

	ens := NewEnsurer(unit)
	ens.Ensure("vue", "PropType")

	got := apply(t, unit)
	assert.Contains(t, got, "import { ref, PropType } from 'vue';")
}

func TestEnsure_Idempotent(t *testing.T) {
	unit := parseUnit(t, `import { ref } from 'vue';
`)

	ens := NewEnsurer(unit)
	ens.Ensure("vue", "PropType")
	ens.Ensure("vue", "PropType", "defineComponent")
	ens.Ensure("vue", "ref")

	got := apply(t, unit)
	assert.Equal(t, 1, strings.Count(got, "PropType"))
	assert.Equal(t, 1, strings.Count(got, "defineComponent"))
	assert.Equal(t, 1, strings.Count(got, "ref,"), "existing names are never re-added")
	assert.Contains(t, got, "import { ref, PropType, defineComponent } from 'vue';")
}

func TestEnsure_AppendsNewImportStatement(t *testing.T) {
	unit := parseUnit(t, `import { Component } from 'vue-property-decorator';

class X {}
`)

	ens := NewEnsurer(unit)
	ens.Ensure("vue", "defineComponent")

	got := apply(t, unit)
	assert.Contains(t, got,
		"import { Component } from 'vue-property-decorator';\nimport { defineComponent } from 'vue';")
}

func TestEnsure_ExtendsDefaultOnlyImport(t *testing.T) {
	unit := parseUnit(t, `import Vue from 'vue';
`)

	ens := NewEnsurer(unit)
	ens.Ensure("vue", "defineComponent", "PropType")

	got := apply(t, unit)
	assert.Contains(t, got, "import Vue, { defineComponent, PropType } from 'vue';")
}

func TestEnsure_FileWithoutImports(t *testing.T) {
	unit := parseUnit(t, `class X {}
`)

	ens := NewEnsurer(unit)
	ens.Ensure("vue", "defineComponent")

	got := apply(t, unit)
	assert.True(t, strings.HasPrefix(got, `import { defineComponent } from "vue";`))
}

func TestEnsure_MatchesQuoteStyle(t *testing.T) {
	unit := parseUnit(t, `import { Component } from "vue-property-decorator";
`)

	ens := NewEnsurer(unit)
	ens.Ensure("vue", "defineComponent")

	got := apply(t, unit)
	assert.Contains(t, got, `import { defineComponent } from "vue";`)
}
