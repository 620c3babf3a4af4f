package distributing

import (
	"fmt"
	"time"

	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/pkg/utils"
)

// ScheduleGraceWindow tolera campanhas com início "hoje" montadas em outro
// fuso horário
const ScheduleGraceWindow = 24 * time.Hour

// ValidateSchedule confere o formato ISO das datas, a janela de carência de
// início e a ordem início < fim. As mesmas regras valem para todas as
// plataformas.
func ValidateSchedule(schedule domain.Schedule) []string {
	scheduleErrors := make([]string, 0)

	if schedule.StartDate == "" {
		scheduleErrors = append(scheduleErrors, "data de início é obrigatória")
	}

	if schedule.EndDate == "" {
		scheduleErrors = append(scheduleErrors, "data de término é obrigatória")
	}

	if len(scheduleErrors) > 0 {
		return scheduleErrors
	}

	startDate, err := utils.ParseDate(schedule.StartDate)
	if err != nil {
		scheduleErrors = append(scheduleErrors, fmt.Sprintf("data de início inválida: %q", schedule.StartDate))
	}

	endDate, err := utils.ParseDate(schedule.EndDate)
	if err != nil {
		scheduleErrors = append(scheduleErrors, fmt.Sprintf("data de término inválida: %q", schedule.EndDate))
	}

	if len(scheduleErrors) > 0 {
		return scheduleErrors
	}

	if startDate.Before(time.Now().Add(-ScheduleGraceWindow)) {
		scheduleErrors = append(scheduleErrors, "data de início no passado")
	}

	if !endDate.After(*startDate) {
		scheduleErrors = append(scheduleErrors, "data de término deve ser posterior à data de início")
	}

	return scheduleErrors
}
