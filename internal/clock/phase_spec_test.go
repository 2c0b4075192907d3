package clock_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fraudsim/internal/clock"
	"github.com/san-kum/fraudsim/internal/variant"
)

var _ = Describe("Clock phases", func() {
	var c *clock.Clock

	BeforeEach(func() {
		c = clock.New(clock.DefaultConfig(), clock.WithNow(func() time.Time {
			return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		}))
	})

	It("starts idle", func() {
		Expect(c.Phase()).To(Equal(clock.Idle))
		Expect(c.State().Active()).To(BeFalse())
	})

	Context("after Start", func() {
		BeforeEach(func() {
			c.Start(variant.LogisticRegression)
		})

		It("is running at zero progress", func() {
			Expect(c.Phase()).To(Equal(clock.Running))
			Expect(c.Progress()).To(BeZero())
			Expect(c.LogLines()).To(BeEmpty())
		})

		It("adds a fixed step per tick", func() {
			for i := 1; i <= 10; i++ {
				ev := c.Tick()
				Expect(ev.Advanced).To(BeTrue())
				Expect(c.Progress()).To(Equal(i * clock.DefaultStep))
			}
		})

		It("completes after exactly fifty ticks", func() {
			for i := 0; i < 49; i++ {
				Expect(c.Tick().Completed).To(BeFalse())
			}
			Expect(c.Tick().Completed).To(BeTrue())
			Expect(c.Phase()).To(Equal(clock.Complete))
			Expect(c.Running()).To(BeFalse())
		})

		It("ignores ticks after completion", func() {
			for i := 0; i < 50; i++ {
				c.Tick()
			}
			before := len(c.LogLines())
			Expect(c.Tick()).To(Equal(clock.Event{}))
			Expect(c.LogLines()).To(HaveLen(before))
			Expect(c.LogLines()[before-3:]).To(Equal(clock.CompletionLines[:]))
		})

		It("abandons a run when another variant starts", func() {
			for i := 0; i < 20; i++ {
				c.Tick()
			}
			c.Start(variant.QuantumSVM)
			Expect(c.Variant()).To(Equal(variant.QuantumSVM))
			Expect(c.Progress()).To(BeZero())
			Expect(c.LogLines()).To(BeEmpty())
		})
	})

	It("returns to idle on Reset", func() {
		c.Start(variant.XGBoost)
		c.Tick()
		c.Reset()
		Expect(c.Phase()).To(Equal(clock.Idle))
	})
})
