package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `import { Component, Prop, Vue } from 'vue-property-decorator';

@Component
export default class Button extends Vue {
  @Prop({ default: 'Go' }) label!: string;
}
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "component.ts")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestMigrateCommand_WriteInPlace(t *testing.T) {
	path := writeFixture(t, fixture)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "--write", path})
	require.NoError(t, cmd.Execute())

	out, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(out), "export default defineComponent({")
	assert.Contains(t, string(out), "default: 'Go',")
	assert.NotContains(t, string(out), "@Component")
}

func TestMigrateCommand_SkipsFilesWithoutComponent(t *testing.T) {
	src := "export const answer = 42;\n"
	path := writeFixture(t, src)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "--write", path})
	require.NoError(t, cmd.Execute())

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestMigrateCommand_ContinuesPastFailures(t *testing.T) {
	bad := writeFixture(t, `import { Component, Vue } from 'vue-property-decorator';

@Component
export default class WriteOnly extends Vue {
  inner = '';

  set value(v: string) {
    this.inner = v;
  }
}
`)
	good := writeFixture(t, fixture)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "--write", bad, good})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")

	// The failing file is untouched, the good one is still migrated.
	badOut, readErr := os.ReadFile(bad)
	require.NoError(t, readErr)
	assert.Contains(t, string(badOut), "@Component")

	goodOut, readErr := os.ReadFile(good)
	require.NoError(t, readErr)
	assert.Contains(t, string(goodOut), "defineComponent")
}

func TestVersionCommand(t *testing.T) {
	buf := new(bytes.Buffer)

	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "vue-class-migrator")
}
