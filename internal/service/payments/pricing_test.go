package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPrice(t *testing.T) {
	tests := []struct {
		name           string
		quantity       int
		allPaidLessons int
		unitPrice      float64
		want           float64
	}{
		{
			name:           "пакет из 5 уроков закрывается - скидка применяется",
			quantity:       5,
			allPaidLessons: 0,
			unitPrice:      15.0,
			want:           71.25, // 75 - 15*5*0.05
		},
		{
			name:           "пятый урок закрывает пакет - скидка на полный пакет",
			quantity:       1,
			allPaidLessons: 4,
			unitPrice:      15.0,
			want:           11.25, // 15 - 3.75
		},
		{
			name:           "пакет не закрыт - без скидки",
			quantity:       1,
			allPaidLessons: 1,
			unitPrice:      15.0,
			want:           15.0,
		},
		{
			name:           "второй пакет тоже со скидкой",
			quantity:       5,
			allPaidLessons: 5,
			unitPrice:      15.0,
			want:           71.25,
		},
		{
			name:           "три урока без скидки",
			quantity:       3,
			allPaidLessons: 0,
			unitPrice:      15.0,
			want:           45.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotalPrice(tt.quantity, tt.allPaidLessons, tt.unitPrice)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestRoundHalfEven(t *testing.T) {
	// Банковское округление: 0.125 -> 0.12, 0.135 -> 0.14
	assert.InDelta(t, 0.12, roundHalfEven(0.125), 0.0001)
	assert.InDelta(t, 0.14, roundHalfEven(0.135), 0.0001)
	assert.InDelta(t, 71.25, roundHalfEven(71.25), 0.0001)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "71.25", formatAmount(71.25))
	assert.Equal(t, "15.00", formatAmount(15.0))
	assert.Equal(t, "11.25", formatAmount(11.25))
}
