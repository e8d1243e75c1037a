package wheel

import "wheel_backend/internal/model"

// CalculateProbabilities - распределение вероятностей секторов при текущем
// расходе дневного лимита. Чем ближе лимит к исчерпанию, тем вероятнее
// сектор 0 и тем реже платные сектора.
//
// fractionUsed обрезается до [0, 1]. Для каждого сектора вероятность линейно
// интерполируется от базовой (лимит не тронут) к максимальной (лимит выбран),
// после чего веса нормализуются так, чтобы их сумма была ровно 1.0.
// Функция чистая: без ввода-вывода и случайности
func CalculateProbabilities(sectors []model.PrizeTier, fractionUsed float64) map[int]float64 {
	if fractionUsed < 0 {
		fractionUsed = 0
	}
	if fractionUsed > 1 {
		fractionUsed = 1
	}

	probs := make(map[int]float64, len(sectors))

	total := 0.0
	for _, s := range sectors {
		p := (s.BaseProbability + (s.MaxProbability-s.BaseProbability)*fractionUsed) / 100.0
		probs[s.Amount] = p
		total += p
	}

	// Вырожденная сумма - откатываемся на базовые вероятности
	if total <= 0 {
		total = 0
		for _, s := range sectors {
			probs[s.Amount] = s.BaseProbability / 100.0
			total += probs[s.Amount]
		}
	}

	// Базовые тоже нулевые - раздаем поровну
	if total <= 0 {
		for _, s := range sectors {
			probs[s.Amount] = 1.0 / float64(len(sectors))
		}
		return probs
	}

	for amount := range probs {
		probs[amount] /= total
	}

	return probs
}
