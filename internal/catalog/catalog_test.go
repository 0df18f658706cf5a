package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/essence-api/internal/catalog"
	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = catalog.Builtin()
}

func (s *CatalogTestSuite) TestBuiltinShape() {
	s.Len(s.catalog.Items(), 47)

	dungeons := s.catalog.Dungeons()
	s.Require().Len(dungeons, 5)
	names := make([]string, 0, len(dungeons))
	for _, d := range dungeons {
		names = append(names, d.Name)
	}
	s.Equal([]string{
		"Core Area",
		"Energy Highlands",
		"Mining Area",
		"Originium Research Park",
		"Wuling City",
	}, names)

	s.Equal([]string{"Arts Unit", "Greatsword", "Handcannon", "Polearm", "Sword"}, s.catalog.Categories())
}

func (s *CatalogTestSuite) TestLookups() {
	item, ok := s.catalog.Item("Sword-Steel Echo")
	s.Require().True(ok)
	s.Equal(entities.Item{Name: "Sword-Steel Echo", Base: 1, Bonus: 2, Skill: 5}, item)

	_, ok = s.catalog.Item("Sword-Nope")
	s.False(ok)

	d, ok := s.catalog.Dungeon("Wuling City")
	s.Require().True(ok)
	s.True(d.SkillDrops.Contains(14))
	s.False(d.SkillDrops.Contains(2))

	_, ok = s.catalog.Dungeon("Atlantis")
	s.False(ok)
}

func (s *CatalogTestSuite) TestItemsInCategorySorted() {
	polearms := s.catalog.ItemsInCategory("Polearm")
	s.Require().Len(polearms, 6)
	for i := 1; i < len(polearms); i++ {
		s.Less(polearms[i-1].Name, polearms[i].Name)
	}

	s.Len(s.catalog.ItemsInCategory(""), 47)
	s.Empty(s.catalog.ItemsInCategory("Bow"))
}

func (s *CatalogTestSuite) TestItemsReturnsCopy() {
	items := s.catalog.Items()
	items[0].Name = "mutated"

	first := s.catalog.Items()[0]
	s.Equal("Sword-Steel Echo", first.Name)
}

func (s *CatalogTestSuite) TestNewRejectsDuplicates() {
	_, err := catalog.New(
		[]entities.Item{{Name: "A-x"}, {Name: "A-x"}},
		[]*entities.Dungeon{{Name: "D"}, {Name: "D"}, nil},
	)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), `duplicate item "A-x"`)
	s.Contains(err.Error(), `duplicate dungeon "D"`)
	s.Contains(err.Error(), "dungeon 2 has no name")
}

func (s *CatalogTestSuite) TestLoad() {
	doc := `
dungeons:
  - name: Test Cave
    base: [2, 1, 2]
    bonus: [5, 8]
    skill: [9, 10]
items:
  - {name: Sword-A, base: 1, bonus: 5, skill: 9}
  - {name: Sword-B, base: 2, bonus: 5, skill: 10}
`
	c, err := catalog.Load(strings.NewReader(doc))
	s.Require().NoError(err)

	s.Len(c.Items(), 2)
	d, ok := c.Dungeon("Test Cave")
	s.Require().True(ok)
	s.Equal([]entities.AttributeCode{1, 2}, d.BaseDrops.Codes())
}

func (s *CatalogTestSuite) TestLoadErrors() {
	testCases := []struct {
		name   string
		doc    string
		errMsg string
	}{
		{name: "empty document", doc: "", errMsg: "catalog is empty"},
		{name: "unknown field", doc: "monsters: []\n", errMsg: "failed to decode catalog"},
		{name: "unnamed item", doc: "items:\n  - {base: 1}\n", errMsg: "item 0 has no name"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := catalog.Load(strings.NewReader(tc.doc))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *CatalogTestSuite) TestLoadFileMissing() {
	_, err := catalog.LoadFile("/nonexistent/catalog.yaml")
	s.Error(err)
}
