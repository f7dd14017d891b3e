package billing

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"inkwell/backend/internal/model"
)

//go:embed plans.yaml
var defaultPlans []byte

// Catalog is the ordered, read-only list of plans.
type Catalog struct {
	plans []model.Plan
	byID  map[string]model.Plan
}

type catalogFile struct {
	Plans []model.Plan `yaml:"plans"`
}

// LoadCatalog reads the plan catalog from path, or the embedded default
// when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	raw := defaultPlans
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read plans file: %w", err)
		}
		raw = data
	}
	return ParseCatalog(raw)
}

func ParseCatalog(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse plans: %w", err)
	}
	if len(file.Plans) == 0 {
		return nil, errors.New("plan catalog is empty")
	}

	c := &Catalog{byID: make(map[string]model.Plan, len(file.Plans))}
	for i, p := range file.Plans {
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			return nil, fmt.Errorf("plan %d has no id", i)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate plan id %q", p.ID)
		}
		if p.MonthlyPrice < 0 || p.YearlyPrice < 0 {
			return nil, fmt.Errorf("plan %q has a negative price", p.ID)
		}
		if p.Limits.KeywordResearches < 0 || p.Limits.Articles < 0 {
			return nil, fmt.Errorf("plan %q has a negative limit", p.ID)
		}
		if p.Currency == "" {
			p.Currency = "usd"
		}
		p.Currency = strings.ToLower(p.Currency)
		c.plans = append(c.plans, p)
		c.byID[p.ID] = p
	}
	if _, ok := c.byID[model.FreePlanID]; !ok {
		return nil, fmt.Errorf("plan catalog must define %q", model.FreePlanID)
	}
	return c, nil
}

// Plans returns a copy of the catalog in file order.
func (c *Catalog) Plans() []model.Plan {
	out := make([]model.Plan, len(c.plans))
	copy(out, c.plans)
	return out
}

func (c *Catalog) Get(id string) (model.Plan, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Free returns the fallback plan.
func (c *Catalog) Free() model.Plan {
	return c.byID[model.FreePlanID]
}
