package model

// Stats - накопленная статистика по всем прогонам процесса
type Stats struct {
	TotalRuns       int     // Сколько прогонов завершено
	TotalHands      int     // Сколько раздач сыграно
	BetHands        int     // Из них со ставкой
	TotalWagered    float64 // Сумма всех ставок
	TotalProfit     float64 // Итог игрока по всем прогонам
	TotalCommission float64 // Комиссия с выигрышей на банкира

	ReturnPct float64 // Возврат игроку = (TotalWagered+TotalProfit)/TotalWagered*100

	RunWindow       []RunResult // Окно последних прогонов
	WindowReturnPct float64     // Возврат в окне
	WindowSize      int         // Размер окна
}

// Результат прогона для окна
type RunResult struct {
	Strategy  string
	Hands     int
	Wagered   float64
	Profit    float64
	ReturnPct float64
}
