package filter_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ptable/internal/catalog"
	"github.com/san-kum/ptable/internal/filter"
)

func symbols(es []catalog.Element) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Symbol
	}
	return out
}

var _ = Describe("State", func() {
	var all []catalog.Element

	BeforeEach(func() {
		all = catalog.Default().All()
	})

	It("passes everything through by default", func() {
		Expect(filter.New().Apply(all)).To(HaveLen(118))
	})

	DescribeTable("query matching",
		func(query string, want []string) {
			s := filter.New()
			s.Query = query
			Expect(symbols(s.Apply(all))).To(Equal(want))
		},
		Entry("by name, case-insensitive", "HELIUM", []string{"He"}),
		Entry("by symbol", "xe", []string{"Xe"}),
		Entry("by number digits", "118", []string{"Og"}),
		Entry("substring of number", "11", []string{"Na", "Ds", "Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og"}),
		Entry("surrounding space is ignored", "  neon ", []string{"Ne"}),
	)

	It("matches numbers containing the query", func() {
		s := filter.State{Query: "11", Category: filter.All}
		got := s.Apply(all)
		Expect(got).To(ContainElement(HaveField("AtomicNumber", 11)))
		Expect(got).To(ContainElement(HaveField("AtomicNumber", 111)))
	})

	It("filters by category case-insensitively", func() {
		got := filter.State{Category: "Noble Gas"}.Apply(all)
		Expect(symbols(got)).To(Equal([]string{"He", "Ne", "Ar", "Kr", "Xe", "Rn", "Og"}))
	})

	It("treats radioactive as a derived category", func() {
		got := filter.State{Category: filter.Radioactive}.Apply(all)
		Expect(got).To(HaveLen(37))
		Expect(symbols(got)).To(ContainElements("Tc", "Pm", "Po", "U"))
		Expect(symbols(got)).NotTo(ContainElement("Bi"))
	})

	It("combines query and category", func() {
		got := filter.State{Query: "ium", Category: "alkali metal"}.Apply(all)
		Expect(symbols(got)).To(Equal([]string{"Li", "Na", "K", "Rb", "Cs", "Fr"}))
	})

	It("returns an empty result rather than nil", func() {
		got := filter.State{Query: "zzz", Category: filter.All}.Apply(all)
		Expect(got).NotTo(BeNil())
		Expect(got).To(BeEmpty())
	})
})

var _ = Describe("Categories", func() {
	It("wraps the catalog categories with all and radioactive", func() {
		opts := filter.Categories(catalog.Default())
		Expect(opts[0]).To(Equal(filter.All))
		Expect(opts[len(opts)-1]).To(Equal(filter.Radioactive))
		Expect(opts).To(HaveLen(12))
	})

	It("cycles in both directions", func() {
		opts := []string{filter.All, "metalloid", filter.Radioactive}
		s := filter.New()
		s = s.Cycle(opts, 1)
		Expect(s.Category).To(Equal("metalloid"))
		s = s.Cycle(opts, 1).Cycle(opts, 1)
		Expect(s.Category).To(Equal(filter.All))
		Expect(s.Cycle(opts, -1).Category).To(Equal(filter.Radioactive))
	})

	It("labels categories for display", func() {
		Expect(filter.Label(filter.All)).To(Equal("All Categories"))
		Expect(filter.Label("noble gas")).To(Equal("Noble gas"))
	})
})
