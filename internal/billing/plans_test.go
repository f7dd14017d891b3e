package billing_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"inkwell/backend/internal/billing"
	"inkwell/backend/internal/model"
)

func TestLoadCatalog_Default(t *testing.T) {
	c, err := billing.LoadCatalog("")
	require.NoError(t, err)

	free := c.Free()
	require.Equal(t, model.FreePlanID, free.ID)
	require.Equal(t, int64(0), free.MonthlyPrice)

	pro, ok := c.Get("pro")
	require.True(t, ok)
	require.Equal(t, 30, pro.Limits.Limit(model.UsageArticle))
	require.True(t, pro.Highlighted)

	business, ok := c.Get("business")
	require.True(t, ok)
	require.Zero(t, business.Limits.Limit(model.UsageKeywordResearch))
}

func TestLoadCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
plans:
  - id: free
    name: Free
    currency: EUR
  - id: team
    name: Team
    monthly_price: 900
`), 0o644))

	c, err := billing.LoadCatalog(path)
	require.NoError(t, err)
	plans := c.Plans()
	require.Len(t, plans, 2)
	require.Equal(t, "eur", plans[0].Currency)
	require.Equal(t, "usd", plans[1].Currency)
}

func TestParseCatalog_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":     `plans: []`,
		"no free":   "plans:\n  - id: pro\n",
		"duplicate": "plans:\n  - id: free\n  - id: free\n",
		"negative":  "plans:\n  - id: free\n    monthly_price: -1\n",
		"no id":     "plans:\n  - name: x\n",
	}
	for name, raw := range cases {
		_, err := billing.ParseCatalog([]byte(raw))
		require.Error(t, err, name)
	}
}
