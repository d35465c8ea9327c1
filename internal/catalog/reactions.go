package catalog

var sampleReactions = map[int][]Reaction{
	1: {
		{"2H₂ + O₂ → 2H₂O", "Combustion of hydrogen to form water"},
		{"H₂ + Cl₂ → 2HCl", "Formation of hydrogen chloride"},
		{"H₂ + F₂ → 2HF", "Formation of hydrogen fluoride"},
		{"3H₂ + N₂ ⇌ 2NH₃", "Haber process to produce ammonia"},
		{"2H₂ + CO ⇌ CH₃OH", "Synthesis of methanol"},
		{"Zn + 2HCl → ZnCl₂ + H₂", "Single displacement with zinc"},
		{"CH₄ + H₂O ⇌ CO + 3H₂", "Steam reforming of methane"},
	},
	8: {
		{"2H₂ + O₂ → 2H₂O", "Formation of water"},
		{"C + O₂ → CO₂", "Combustion of carbon"},
		{"4Fe + 3O₂ → 2Fe₂O₃", "Oxidation of iron (rusting)"},
		{"S + O₂ → SO₂", "Combustion of sulfur"},
		{"CH₄ + 2O₂ → CO₂ + 2H₂O", "Combustion of methane"},
		{"2Mg + O₂ → 2MgO", "Oxidation of magnesium"},
		{"4Al + 3O₂ → 2Al₂O₃", "Oxidation of aluminum"},
	},
	11: {
		{"2Na + 2H₂O → 2NaOH + H₂", "Reaction with water"},
		{"2Na + Cl₂ → 2NaCl", "Formation of sodium chloride"},
		{"2Na + O₂ → Na₂O₂", "Formation of sodium peroxide"},
		{"2Na + 2NH₃ → 2NaNH₂ + H₂", "Formation of sodium amide"},
		{"4Na + 3CO₂ → 2Na₂CO₃ + C", "Formation of sodium carbonate"},
		{"2Na + S → Na₂S", "Formation of sodium sulfide"},
		{"2Na + 2HCl → 2NaCl + H₂", "Reaction with acid"},
	},
}

// Reactions returns the element's own reactions, a curated sample, or a
// generic list built from the symbol.
func Reactions(e Element) []Reaction {
	if len(e.Reactions) > 0 {
		return e.Reactions
	}
	if r, ok := sampleReactions[e.AtomicNumber]; ok {
		return r
	}
	s := e.Symbol
	return []Reaction{
		{s + " + ? → Compound", "Reaction with unknown element"},
		{s + " + O₂ → Oxide", "Oxidation reaction"},
		{s + " + H₂O → Products", "Reaction with water"},
		{s + " + Acid → Salt + H₂", "Reaction with acid"},
		{s + " + X₂ → " + s + "X₂", "Reaction with halogen"},
		{s + " + Heat → Changes", "Thermal decomposition"},
		{s + " compounds + e⁻ → Reduced products", "Reduction reaction"},
	}
}
