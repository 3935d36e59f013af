package flow

// Summary сводка бронирования для экрана подтверждения.
// Чистая производная от (выбранная услуга, черновик): пересчитывается
// при каждом обращении, отдельной кэшированной копии нет.
type Summary struct {
	HasService      bool
	ServiceName     string
	DurationMinutes int
	Date            string
	Time            string
	Address         string
	Total           float64
}

// Summary вычисляет сводку по текущему состоянию формы
func (f *Flow) Summary() Summary {
	s := Summary{
		Date:    f.draft.Date,
		Time:    f.draft.Time,
		Address: f.draft.Address,
	}

	if f.service != nil {
		s.HasService = true
		s.ServiceName = f.service.Name
		s.DurationMinutes = f.service.DurationMinutes
		s.Total = f.service.Price
	}

	return s
}
