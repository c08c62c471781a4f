package stages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.NotEmpty(t, c.Stages)
	assert.Equal(t, "legal", c.Stages[0].Code)
	assert.True(t, c.Stage("technical_quality").MultiFile)
	assert.False(t, c.Stage("legal").MultiFile)
	assert.NotEmpty(t, c.Stage("labeling").Requirements)
}

func TestParse_Validation(t *testing.T) {
	cases := map[string]string{
		"empty":     "  \n",
		"bad yaml":  "stages: [",
		"no code":   "stages:\n  - name: x\n",
		"duplicate": "stages:\n  - code: a\n  - code: a\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in))
			require.Error(t, err)
		})
	}
}

func TestParse_Normalizes(t *testing.T) {
	c, err := Parse([]byte(`
stages:
  - code: " b "
    order: 2
    requirements: ["  keep  ", "", " "]
  - code: a
    name: Alpha
    order: 1
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, []string{c.Stages[0].Code, c.Stages[1].Code})
	assert.Equal(t, "b", c.Stage("b").Name, "name defaults to code")
	assert.Equal(t, []string{"keep"}, c.Stage("b").Requirements)
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.True(t, c.Known("stability"))

	path := filepath.Join(t.TempDir(), "stages.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stages:\n  - code: only\n    multi_file: true\n"), 0o600))
	c, err = Load(path)
	require.NoError(t, err)
	assert.True(t, c.Known("only"))
	assert.False(t, c.Known("legal"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestUnknownStageAndOrder(t *testing.T) {
	c := Default()

	s := c.Stage("pharmacovigilance")
	assert.Equal(t, "pharmacovigilance", s.Name)
	assert.False(t, s.MultiFile)

	assert.Equal(t,
		[]string{"legal", "labeling", "clinical", "aaa_unknown", "zzz_unknown"},
		c.Order([]string{"zzz_unknown", "clinical", "labeling", "aaa_unknown", "legal"}))
}

func TestIsMultiFileStage(t *testing.T) {
	c := Default()
	items := []*models.DossierItem{
		{ID: "i1", Stage: "legal"},
		{ID: "i2", Stage: "stability", MultiFile: true},
	}

	assert.True(t, IsMultiFileStage(c.Stage("technical_quality"), nil), "catalog flag")
	assert.True(t, IsMultiFileStage(c.Stage("stability"), items), "item flag")
	assert.False(t, IsMultiFileStage(c.Stage("legal"), items))

	for i := 0; i < 3; i++ {
		assert.False(t, IsMultiFileStage(c.Stage("clinical"), items), "pure: same answer every call")
	}
}
