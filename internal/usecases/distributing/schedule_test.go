package distributing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
)

func TestValidateSchedule(t *testing.T) {
	tomorrow := time.Now().Add(48 * time.Hour).Format("2006-01-02")
	nextWeek := time.Now().Add(7 * 24 * time.Hour).Format("2006-01-02")

	tests := []struct {
		name     string
		schedule domain.Schedule
		validate func(t *testing.T, errs []string)
	}{
		{
			name:     "Agenda válida - sem erros",
			schedule: domain.Schedule{StartDate: tomorrow, EndDate: nextWeek},
			validate: func(t *testing.T, errs []string) {
				assert.Empty(t, errs)
			},
		},
		{
			name:     "Datas ausentes - acumula os dois erros de obrigatoriedade",
			schedule: domain.Schedule{},
			validate: func(t *testing.T, errs []string) {
				assert.Len(t, errs, 2)
				assert.Contains(t, errs, "data de início é obrigatória")
				assert.Contains(t, errs, "data de término é obrigatória")
			},
		},
		{
			name:     "Formato inválido - reporta a data ofensora",
			schedule: domain.Schedule{StartDate: "15/01/2026", EndDate: nextWeek},
			validate: func(t *testing.T, errs []string) {
				assert.Len(t, errs, 1)
				assert.Contains(t, errs[0], "data de início inválida")
			},
		},
		{
			name:     "Início no passado além da janela de carência",
			schedule: domain.Schedule{StartDate: "2020-01-01", EndDate: nextWeek},
			validate: func(t *testing.T, errs []string) {
				assert.Contains(t, errs, "data de início no passado")
			},
		},
		{
			name: "Início de hoje dentro da janela de carência - aceito",
			schedule: domain.Schedule{
				StartDate: time.Now().Format("2006-01-02"),
				EndDate:   nextWeek,
			},
			validate: func(t *testing.T, errs []string) {
				assert.NotContains(t, errs, "data de início no passado")
			},
		},
		{
			name:     "Término igual ao início - rejeitado",
			schedule: domain.Schedule{StartDate: tomorrow, EndDate: tomorrow},
			validate: func(t *testing.T, errs []string) {
				assert.Contains(t, errs, "data de término deve ser posterior à data de início")
			},
		},
		{
			name:     "Término antes do início - rejeitado",
			schedule: domain.Schedule{StartDate: nextWeek, EndDate: tomorrow},
			validate: func(t *testing.T, errs []string) {
				assert.Contains(t, errs, "data de término deve ser posterior à data de início")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ValidateSchedule(tt.schedule))
		})
	}
}
