package wheel

import "sort"

// SelectWinningSector - взвешенный случайный выбор сектора.
// Отрезок [0,1) делится на интервалы пропорционально весам, rnd дает точку.
// Обход секторов в отсортированном порядке, чтобы выбор был воспроизводим
// при фиксированном rnd. Остаток погрешности округления достается
// последнему сектору
func SelectWinningSector(probs map[int]float64, rnd func() float64) int {
	amounts := make([]int, 0, len(probs))
	for amount := range probs {
		amounts = append(amounts, amount)
	}
	sort.Ints(amounts)

	r := rnd()
	cumulative := 0.0
	for _, amount := range amounts {
		cumulative += probs[amount]
		if r < cumulative {
			return amount
		}
	}

	return amounts[len(amounts)-1]
}
