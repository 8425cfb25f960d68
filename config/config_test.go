package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andaru/sbmlbind/xmlutil"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  string
		want Config
		ns   xmlutil.Namespaces
		err  bool
	}{
		{
			name: "empty",
			want: Default(),
			ns:   xmlutil.SBML(3, 1),
		},
		{
			name: "package",
			doc:  "package = \"fbc\"\npackage_version = 2\nversion = 2\nformat = \"yaml\"\n",
			want: Config{Level: 3, Version: 2, Package: "fbc", PackageVersion: 2, Format: FormatYAML},
			ns:   xmlutil.SBMLPackage("fbc", 3, 2, 2),
		},
		{
			name: "sedml",
			doc:  "package = \"sedml\"\nlevel = 1\nversion = 3\nverbosity = 2\n",
			want: Config{Level: 1, Version: 3, Package: "sedml", Format: FormatText, Verbosity: 2},
			ns:   xmlutil.SEDML(1, 3),
		},
		{
			name: "sbgn",
			doc:  "package = \"sbgn\"\nversion = 3\n",
			want: Config{Level: 3, Version: 3, Package: "sbgn", Format: FormatText},
			ns:   xmlutil.SBGN(3),
		},
		{name: "unknown key", doc: "colour = \"blue\"\n", err: true},
		{name: "bad format", doc: "format = \"xml\"\n", err: true},
		{name: "bad level", doc: "level = 2\n", err: true},
		{name: "no package version", doc: "package = \"render\"\n", err: true},
		{name: "not toml", doc: "level = \n", err: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			c, err := Parse([]byte(tc.doc))
			if tc.err {
				check.Error(err)
				return
			}
			check.NoError(err)
			check.Equal(tc.want, c)
			check.Equal(tc.ns, c.Namespaces())
		})
	}
}

func TestLoad(t *testing.T) {
	check := assert.New(t)
	name := filepath.Join(t.TempDir(), "sbmlbind.toml")
	check.NoError(os.WriteFile(name, []byte("format = \"json\"\n"), 0o600))
	c, err := Load(name)
	check.NoError(err)
	check.Equal(FormatJSON, c.Format)
	check.Equal(uint(3), c.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	check.Error(err)
}
