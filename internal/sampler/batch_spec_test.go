package sampler_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fraudsim/internal/sampler"
)

var _ = Describe("Sampler", func() {
	var s *sampler.Sampler

	BeforeEach(func() {
		s = sampler.New(sampler.DefaultConfig(), rand.New(rand.NewSource(GinkgoRandomSeed())))
	})

	DescribeTable("Sample returns exactly n points",
		func(n, want int) {
			Expect(s.Sample(n)).To(HaveLen(want))
		},
		Entry("zero", 0, 0),
		Entry("negative", -3, 0),
		Entry("one", 1, 1),
		Entry("arena batch", sampler.DefaultPoints, 80),
	)

	DescribeTable("SampleFlags returns exactly n points",
		func(n, want int) {
			Expect(s.SampleFlags(n)).To(HaveLen(want))
		},
		Entry("zero", 0, 0),
		Entry("arena batch", sampler.DefaultFlagPoints, 40),
	)

	It("keeps scored points inside the box", func() {
		for _, p := range s.Sample(500) {
			Expect(p.X).To(BeNumerically(">=", 0))
			Expect(p.X).To(BeNumerically("<", sampler.DefaultWidth))
			Expect(p.Y).To(BeNumerically(">=", 0))
			Expect(p.Y).To(BeNumerically("<", sampler.DefaultHeight))
			Expect(p.Risk).To(BeNumerically(">=", 0))
			Expect(p.Risk).To(BeNumerically("<", 1))
		}
	})

	It("keeps flagged points inside their box", func() {
		for _, p := range s.SampleFlags(500) {
			Expect(p.X).To(BeNumerically("<", sampler.DefaultFlagWidth))
			Expect(p.Y).To(BeNumerically("<", sampler.DefaultFlagHeight))
		}
	})

	It("flags roughly the configured share as fraud", func() {
		n := 20000
		share := float64(sampler.CountFraud(s.SampleFlags(n))) / float64(n)
		Expect(share).To(BeNumerically("~", sampler.DefaultFraudProbability, 0.02))
	})

	It("produces a fresh batch on every call", func() {
		a := s.Sample(10)
		b := s.Sample(10)
		Expect(a).NotTo(Equal(b))
	})

	It("honors an all-fraud probability", func() {
		cfg := sampler.DefaultConfig()
		cfg.FraudProbability = 1
		all := sampler.New(cfg, nil).SampleFlags(25)
		Expect(sampler.CountFraud(all)).To(Equal(25))
	})
})
