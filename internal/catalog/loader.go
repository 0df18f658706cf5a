package catalog

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
)

type fileDungeon struct {
	Name  string                   `yaml:"name"`
	Base  []entities.AttributeCode `yaml:"base"`
	Bonus []entities.AttributeCode `yaml:"bonus"`
	Skill []entities.AttributeCode `yaml:"skill"`
}

type fileCatalog struct {
	Dungeons []fileDungeon   `yaml:"dungeons"`
	Items    []entities.Item `yaml:"items"`
}

// Load reads a YAML catalog:
//
//	dungeons:
//	  - name: Core Area
//	    base: [1, 2, 3, 4, 5]
//	    bonus: [1, 3, 4]
//	    skill: [1, 2, 3]
//	items:
//	  - {name: Sword-Steel Echo, base: 1, bonus: 2, skill: 5}
func Load(r io.Reader) (*Catalog, error) {
	var fc fileCatalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidArgument("catalog is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}

	dungeons := make([]*entities.Dungeon, 0, len(fc.Dungeons))
	for _, d := range fc.Dungeons {
		dungeons = append(dungeons, &entities.Dungeon{
			Name:       d.Name,
			BaseDrops:  entities.NewAttributeSet(d.Base...),
			BonusDrops: entities.NewAttributeSet(d.Bonus...),
			SkillDrops: entities.NewAttributeSet(d.Skill...),
		})
	}

	return New(fc.Items, dungeons)
}

// LoadFile reads a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path) // #nosec G304 -- operator-supplied catalog path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}
