package sat_test

import (
	"bytes"
	"iter"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/limaJavier/graphsat/pkg/sat"
)

var _ = Describe("DIMACS writer", func() {
	It("should emit comments, header and zero terminated clauses", func() {
		instance := sat.SAT{
			Variables: 3,
			Clauses:   [][]int64{{1, 2, 3}, {-1, -2}},
			Comments:  []string{"a comment", ""},
		}
		Expect(instance.ToDIMACS()).To(Equal("c a comment\nc \np cnf 3 2\n1 2 3 0\n-1 -2 0\n"))
	})
	It("should serialize an empty clause as a lone 0", func() {
		instance := sat.SAT{Variables: 1, Clauses: [][]int64{{}}}
		Expect(instance.ToDIMACS()).To(Equal("p cnf 1 1\n0\n"))
	})
	It("should write generated clauses after the stored ones", func() {
		instance := sat.SAT{
			Variables:      3,
			Clauses:        [][]int64{{-1, -2}},
			Generated:      generated([]int64{1, 2}, []int64{2, 3}),
			GeneratedCount: 2,
		}
		Expect(instance.ClauseCount()).To(Equal(uint64(3)))
		Expect(instance.ToDIMACS()).To(Equal("p cnf 3 3\n-1 -2 0\n1 2 0\n2 3 0\n"))
		Expect(instance.Materialize()).To(Equal(sat.SAT{Variables: 3, Clauses: [][]int64{{-1, -2}, {1, 2}, {2, 3}}}))
	})
	It("should write the same bytes to a file", func() {
		instance := sat.SAT{Variables: 2, Clauses: [][]int64{{1, -2}}, Comments: []string{"file"}}
		file := filepath.Join(GinkgoT().TempDir(), "instance.cnf")
		Expect(instance.WriteFile(file)).To(Succeed())

		read, err := sat.ReadDIMACSFile(file)
		Expect(err).ToNot(HaveOccurred())
		Expect(read).To(Equal(instance))
	})
})

var _ = Describe("DIMACS reader", func() {
	It("should fail if there is no header", func() {
		_, err := sat.ReadDIMACS(strings.NewReader("1 2 3 0\n"))
		Expect(err).To(HaveOccurred())
	})
	It("should fail if the header is malformed", func() {
		_, err := sat.ReadDIMACS(strings.NewReader("p dnf 3 1\n1 2 3 0\n"))
		Expect(err).To(HaveOccurred())
	})
	It("should fail if the clause count differs from the header", func() {
		_, err := sat.ReadDIMACS(strings.NewReader("p cnf 3 3\n1 2 3 0\n"))
		Expect(err).To(MatchError(ContainSubstring("declares 3 clauses")))
	})
	It("should fail instead of panicking on a clause count beyond the int range", func() {
		var err error
		Expect(func() {
			_, err = sat.ReadDIMACS(strings.NewReader("p cnf 1 18446744073709551615\n1 0\n"))
		}).NotTo(Panic())
		Expect(err).To(MatchError(ContainSubstring("clause count")))
	})
	It("should not preallocate a huge declared clause count", func() {
		_, err := sat.ReadDIMACS(strings.NewReader("p cnf 1 1099511627776\n1 0\n"))
		Expect(err).To(MatchError(ContainSubstring("declares 1099511627776 clauses but 1 were found")))
	})
	It("should fail on a variable count beyond 32-bit literals", func() {
		_, err := sat.ReadDIMACS(strings.NewReader("p cnf 4294967296 1\n1 0\n"))
		Expect(err).To(MatchError(ContainSubstring("variable count")))
	})
	It("should fail on literals outside the declared variables", func() {
		_, err := sat.ReadDIMACS(strings.NewReader("p cnf 2 1\n1 -3 0\n"))
		Expect(err).To(HaveOccurred())
	})
	It("should fail on an unterminated clause", func() {
		_, err := sat.ReadDIMACS(strings.NewReader("p cnf 2 1\n1 2\n"))
		Expect(err).To(HaveOccurred())
	})
	It("should parse clauses spanning several lines and empty clauses", func() {
		problem := "c comment\np cnf 3 3\n1 2\n3 0 -1 0\n0\n"
		instance, err := sat.ReadDIMACS(strings.NewReader(problem))
		Expect(err).ToNot(HaveOccurred())
		Expect(instance.Variables).To(Equal(uint64(3)))
		Expect(instance.Comments).To(Equal([]string{"comment"}))
		Expect(instance.Clauses).To(Equal([][]int64{{1, 2, 3}, {-1}, {}}))
	})
	It("should round trip through the writer", func() {
		instance := sat.SAT{
			Variables: 4,
			Clauses:   [][]int64{{1, 2, 3, 4}, {-1, -4}, {}, {2}},
			Comments:  []string{"This is a DIMACS SAT-instances file", ""},
		}
		var buffer bytes.Buffer
		Expect(instance.WriteDIMACS(&buffer)).To(Succeed())

		read, err := sat.ReadDIMACS(&buffer)
		Expect(err).ToNot(HaveOccurred())
		Expect(read).To(Equal(instance))
	})
})

// generated yields the clauses through one reused buffer, as lazy encoders do
func generated(clauses ...[]int64) iter.Seq[[]int64] {
	return func(yield func([]int64) bool) {
		buffer := make([]int64, 0)
		for _, clause := range clauses {
			buffer = append(buffer[:0], clause...)
			if !yield(buffer) {
				return
			}
		}
	}
}

var _ = Describe("Gini solver", func() {
	It("should consume generated clauses", func() {
		instance := sat.SAT{
			Variables:      2,
			Clauses:        [][]int64{{1, 2}},
			Generated:      generated([]int64{-1}, []int64{-2, 1}),
			GeneratedCount: 2,
		}
		solution, err := sat.NewGiniSolver().Solve(instance)
		Expect(err).ToNot(HaveOccurred())
		Expect(solution).To(BeNil())

		instance.Generated, instance.GeneratedCount = generated([]int64{-1}), 1
		solution, err = sat.NewGiniSolver().Solve(instance)
		Expect(err).ToNot(HaveOccurred())
		Expect(solution).To(Equal(sat.SATSolution{-1, 2}))
		Expect(sat.Satisfies(instance, solution)).To(BeTrue())
	})
	It("should stop at a generated empty clause", func() {
		instance := sat.SAT{Variables: 1, Clauses: [][]int64{{1}}, Generated: generated([]int64{}), GeneratedCount: 1}
		solution, err := sat.NewGiniSolver().Solve(instance)
		Expect(err).ToNot(HaveOccurred())
		Expect(solution).To(BeNil())
	})

	It("should agree with Satisfies on a read instance", func() {
		instance, err := sat.ReadDIMACS(strings.NewReader("p cnf 3 3\n1 2 0\n-1 3 0\n-3 0\n"))
		Expect(err).ToNot(HaveOccurred())

		solution, err := sat.NewGiniSolver().Solve(instance)
		Expect(err).ToNot(HaveOccurred())
		Expect(solution).To(ConsistOf(int64(-1), int64(2), int64(-3)))
		Expect(sat.Satisfies(instance, solution)).To(BeTrue())
	})
	It("should report an instance with an empty clause as unsatisfiable", func() {
		solution, err := sat.NewGiniSolver().Solve(sat.SAT{Variables: 1, Clauses: [][]int64{{1}, {}}})
		Expect(err).ToNot(HaveOccurred())
		Expect(solution).To(BeNil())
	})
})
