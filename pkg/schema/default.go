package schema

// Default returns the budget-plan schema: the thirteen fields reconciled
// between the planning deck and the tracker workbook.
func Default() *Schema {
	s, err := New([]Field{
		{Name: "budget_2026", Type: Currency, Label: "2026 Budget"},
		{Name: "sufficient_2026", Type: Currency, Label: "2026 Sufficient"},
		{Name: "gap_gbp", Type: Currency, Label: "Gap (GBP)", Role: RoleGap},
		{Name: "gap_pct", Type: Percentage, Label: "Gap (%)", Role: RoleGap},
		{Name: "awa", Type: Percentage, Label: "AWA"},
		{Name: "con", Type: Percentage, Label: "CON"},
		{Name: "pur", Type: Percentage, Label: "PUR"},
		{Name: "tv", Type: Percentage, Label: "TV", Role: RolePrimaryChannel},
		{Name: "digital", Type: Percentage, Label: "Digital", Role: RoleChannel},
		{Name: "others", Type: Percentage, Label: "Others", Role: RoleChannel},
		{Name: "long_campaigns", Type: Integer, Label: "Long Campaigns", Role: RoleCount},
		{Name: "short_campaigns", Type: Integer, Label: "Short Campaigns", Role: RoleCount},
		{Name: "long_pct", Type: Percentage, Label: "Long %"},
	})
	if err != nil {
		// The default schema is static; a construction error is a bug.
		panic(err)
	}
	return s
}
