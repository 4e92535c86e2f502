package economy

import (
	"math/rand"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/pajbot/bankbot-discord/pkg"
)

func TestDicePayoutWager100(t *testing.T) {
	c := qt.New(t)

	expected := map[int]int64{
		2:  -100,
		3:  -100,
		4:  50,
		5:  50,
		6:  50,
		7:  200,
		8:  50,
		9:  50,
		10: 50,
		11: 200,
		12: -100,
	}

	for sum, delta := range expected {
		c.Assert(DicePayout(sum, 100), qt.Equals, delta, qt.Commentf("sum %d", sum))
	}
}

func TestRollDice(t *testing.T) {
	c := qt.New(t)

	// Intn(6) results 2 and 3 are dice faces 3 and 4
	roll := RollDice(&seqRand{ints: []int{2, 3}}, 100)
	c.Assert(roll.First, qt.Equals, 3)
	c.Assert(roll.Second, qt.Equals, 4)
	c.Assert(roll.Sum(), qt.Equals, 7)
	c.Assert(roll.Payout, qt.Equals, int64(200))

	roll = RollDice(&seqRand{ints: []int{0, 0}}, 15)
	c.Assert(roll.Sum(), qt.Equals, 2)
	c.Assert(roll.Payout, qt.Equals, int64(-15))

	roll = RollDice(&seqRand{ints: []int{0, 3}}, 15)
	c.Assert(roll.Sum(), qt.Equals, 5)
	c.Assert(roll.Payout, qt.Equals, int64(7))
}

func TestRewardsBounds(t *testing.T) {
	c := qt.New(t)

	c.Assert(SalaryReward(&seqRand{ints: []int{0}}), qt.Equals, int64(500))
	c.Assert(SalaryReward(&seqRand{ints: []int{999}}), qt.Equals, int64(1499))
	c.Assert(DailyReward(&seqRand{ints: []int{0}}), qt.Equals, int64(1000))
	c.Assert(DailyReward(&seqRand{ints: []int{1999}}), qt.Equals, int64(2999))

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		salary := SalaryReward(r)
		c.Assert(salary >= 500 && salary <= 1499, qt.IsTrue)
		daily := DailyReward(r)
		c.Assert(daily >= 1000 && daily <= 2999, qt.IsTrue)
	}
}

func TestGamble(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name     string
		floats   []float64
		outcome  GambleOutcome
		expected int64
	}{
		{name: "big win", floats: []float64{0.1, 0.5}, outcome: GambleWin, expected: 2000},
		{name: "big win lowest factor", floats: []float64{0.0, 0.0}, outcome: GambleWin, expected: 1500},
		{name: "half", floats: []float64{0.5}, outcome: GambleHalf, expected: 500},
		{name: "half lower edge", floats: []float64{0.45}, outcome: GambleHalf, expected: 500},
		{name: "lose", floats: []float64{0.9}, outcome: GambleLose, expected: -1000},
		{name: "lose lower edge", floats: []float64{0.65}, outcome: GambleLose, expected: -1000},
	}

	for _, test := range tests {
		result := Gamble(&seqRand{floats: test.floats}, 1000)
		c.Assert(result.Outcome, qt.Equals, test.outcome, qt.Commentf("%s", test.name))
		c.Assert(result.Payout, qt.Equals, test.expected, qt.Commentf("%s", test.name))
	}
}

func TestGambleWinFloors(t *testing.T) {
	result := Gamble(&seqRand{floats: []float64{0.2, 0.25}}, 51)
	// 51 * 1.75 = 89.25
	qt.Assert(t, result.Payout, qt.Equals, int64(89))
}

func TestRollDuel(t *testing.T) {
	c := qt.New(t)

	win := RollDuel(&seqRand{ints: []int{5, 0}})
	c.Assert(win.Won(), qt.IsTrue)
	c.Assert(win.Payout, qt.Equals, int64(DuelWinnings))

	lose := RollDuel(&seqRand{ints: []int{0, 5}})
	c.Assert(lose.Won(), qt.IsFalse)
	c.Assert(lose.Payout, qt.Equals, int64(0))

	tie := RollDuel(&seqRand{ints: []int{3, 3}})
	c.Assert(tie.Tie(), qt.IsTrue)
	c.Assert(tie.Payout, qt.Equals, int64(0))
}

func TestValidateStake(t *testing.T) {
	c := qt.New(t)

	c.Assert(ValidateStake(10, MinDiceWager, 10), qt.IsNil)

	_, ok := pkg.AsValidationError(ValidateStake(5, MinDiceWager, 1000))
	c.Assert(ok, qt.IsTrue)

	_, ok = pkg.AsValidationError(ValidateStake(200, MinDiceWager, 100))
	c.Assert(ok, qt.IsTrue)

	_, ok = pkg.AsValidationError(ValidateStake(49, MinGambleAmount, 1000))
	c.Assert(ok, qt.IsTrue)
}
