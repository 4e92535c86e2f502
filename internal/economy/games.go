package economy

import (
	"math"
	"math/rand"

	"github.com/pajbot/bankbot-discord/pkg"
)

const (
	SalaryMin   = 500
	SalaryRange = 1000

	DailyMin   = 1000
	DailyRange = 2000

	MinDiceWager    = 10
	MinGambleAmount = 50

	// Paid to the player when their die beats the bot's in the single die game
	DuelWinnings = 100

	gambleWinChance  = 0.45
	gambleHalfChance = 0.65
	gambleMinFactor  = 1.5
	gambleHalfFactor = 0.5
)

// Rand is the source of randomness for all games. *rand.Rand satisfies it
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type globalRand struct{}

func (globalRand) Intn(n int) int {
	return rand.Intn(n)
}

func (globalRand) Float64() float64 {
	return rand.Float64()
}

// DefaultRand uses the goroutine-safe top level math/rand functions
var DefaultRand Rand = globalRand{}

func rollDie(r Rand) int {
	return 1 + r.Intn(6)
}

// SalaryReward returns a uniform reward in [500, 1499]
func SalaryReward(r Rand) int64 {
	return int64(SalaryMin + r.Intn(SalaryRange))
}

// DailyReward returns a uniform reward in [1000, 2999]
func DailyReward(r Rand) int64 {
	return int64(DailyMin + r.Intn(DailyRange))
}

// ValidateStake checks that amount is at least min and covered by balance
func ValidateStake(amount, min, balance int64) error {
	if amount < min {
		return pkg.ValidationErrorf("❌ الحد الأدنى للرهان هو %d ذهب", min)
	}

	if amount > balance {
		return pkg.ValidationErrorf("❌ رصيدك غير كافٍ! رصيدك الحالي: %d ذهب", balance)
	}

	return nil
}

type DiceRoll struct {
	First  int
	Second int
	Payout int64
}

func (d DiceRoll) Sum() int {
	return d.First + d.Second
}

// DicePayout returns the balance change for a two dice roll with the given sum
func DicePayout(sum int, wager int64) int64 {
	switch sum {
	case 7, 11:
		return 2 * wager
	case 2, 3, 12:
		return -wager
	default:
		return wager / 2
	}
}

func RollDice(r Rand, wager int64) DiceRoll {
	roll := DiceRoll{
		First:  rollDie(r),
		Second: rollDie(r),
	}
	roll.Payout = DicePayout(roll.Sum(), wager)

	return roll
}

type GambleOutcome int

const (
	GambleLose GambleOutcome = iota
	GambleHalf
	GambleWin
)

type GambleResult struct {
	Outcome GambleOutcome
	Roll    float64

	// Multiplier applied to the amount on a win
	Multiplier float64
	Payout     int64
}

// Gamble draws r in [0,1): below 0.45 wins amount times a uniform factor in [1.5, 2.5),
// below 0.65 wins half the amount, anything else loses the amount
func Gamble(r Rand, amount int64) GambleResult {
	roll := r.Float64()

	switch {
	case roll < gambleWinChance:
		multiplier := gambleMinFactor + r.Float64()
		return GambleResult{
			Outcome:    GambleWin,
			Roll:       roll,
			Multiplier: multiplier,
			Payout:     int64(math.Floor(float64(amount) * multiplier)),
		}

	case roll < gambleHalfChance:
		return GambleResult{
			Outcome:    GambleHalf,
			Roll:       roll,
			Multiplier: gambleHalfFactor,
			Payout:     int64(math.Floor(float64(amount) * gambleHalfFactor)),
		}

	default:
		return GambleResult{
			Outcome: GambleLose,
			Roll:    roll,
			Payout:  -amount,
		}
	}
}

type DuelResult struct {
	Player int
	Bot    int
	Payout int64
}

func (d DuelResult) Won() bool {
	return d.Player > d.Bot
}

func (d DuelResult) Tie() bool {
	return d.Player == d.Bot
}

// RollDuel rolls one die for the player and one for the bot. Only a player win pays out
func RollDuel(r Rand) DuelResult {
	result := DuelResult{
		Player: rollDie(r),
		Bot:    rollDie(r),
	}
	if result.Won() {
		result.Payout = DuelWinnings
	}

	return result
}
