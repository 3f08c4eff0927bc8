package payments

import (
	"math"
	"strconv"

	"github.com/m04kA/TWS-LessonService/internal/domain"
)

// CalculateTotalPrice считает стоимость quantity уроков по фиксированной цене.
// Когда покупка закрывает кратный DiscountBundleSize пакет оплаченных уроков
// ((allPaidLessons + quantity) % 5 == 0), применяется фиксированная скидка -
// DiscountRate от стоимости полного пакета, независимо от количества в покупке.
// Результат округляется банковским округлением до 2 знаков.
func CalculateTotalPrice(quantity, allPaidLessons int, unitPrice float64) float64 {
	total := unitPrice * float64(quantity)

	if (allPaidLessons+quantity)%domain.DiscountBundleSize == 0 {
		total -= unitPrice * float64(domain.DiscountBundleSize) * domain.DiscountRate
	}

	return roundHalfEven(total)
}

// roundHalfEven округляет до 2 знаков по правилу round-half-to-even
func roundHalfEven(amount float64) float64 {
	return math.RoundToEven(amount*100) / 100
}

// formatAmount форматирует сумму для провайдера с двумя знаками после запятой
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
