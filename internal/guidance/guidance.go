// Package guidance содержит предодобренные рекомендации для заявителей.
// Тексты чисто информационные и подбираются по типу инцидента.
package guidance

import (
	"github.com/shenikar/incident_dashboard/internal/models"
)

var byType = map[models.IncidentType][]models.GuidanceItem{
	models.TypeMedical: {
		{Title: "Stop the bleeding", Instruction: "Apply gentle pressure if there is bleeding", Icon: "droplet"},
		{Title: "Keep them conscious", Instruction: "Keep the person conscious and calm", Icon: "heartbeat"},
		{Title: "No food or medicine", Instruction: "Do NOT give food, water, or medicine", Icon: "ban"},
		{Title: "Stay nearby", Instruction: "Stay nearby until medical help arrives", Icon: "phone"},
	},
	models.TypeFire: {
		{Title: "Move away", Instruction: "Move away from smoke and flames", Icon: "fire"},
		{Title: "Use the stairs", Instruction: "Use stairs, NOT elevators", Icon: "door-open"},
		{Title: "Cover your airways", Instruction: "Cover nose and mouth with cloth", Icon: "head-side-mask"},
		{Title: "Do not re-enter", Instruction: "Do NOT re-enter the building", Icon: "ban"},
	},
	models.TypeAccident: {
		{Title: "Get clear of traffic", Instruction: "Move to a safe area away from traffic", Icon: "car"},
		{Title: "Hazard lights", Instruction: "Turn on hazard lights if possible", Icon: "lightbulb"},
		{Title: "Do not move the injured", Instruction: "Do NOT move injured persons", Icon: "ban"},
		{Title: "Call for help", Instruction: "Call emergency services if required", Icon: "phone"},
	},
	models.TypePolice: {
		{Title: "Stay in public", Instruction: "Stay in a safe, public area", Icon: "eye"},
		{Title: "Avoid confrontation", Instruction: "Avoid confronting anyone", Icon: "user-shield"},
		{Title: "Note details", Instruction: "Note details only if safe", Icon: "pen"},
		{Title: "Wait for police", Instruction: "Wait for police assistance", Icon: "shield-alt"},
	},
	models.TypeHazard: {
		{Title: "Keep your distance", Instruction: "Stay well clear of the hazard area", Icon: "radiation"},
		{Title: "Warn others", Instruction: "Warn people approaching the area", Icon: "bullhorn"},
		{Title: "Wait for help", Instruction: "Stay alert and wait for responders", Icon: "phone"},
	},
	models.TypeOther: {
		{Title: "Keep yourself safe", Instruction: "Keep yourself safe", Icon: "exclamation-triangle"},
		{Title: "Stay alert", Instruction: "Stay alert and wait for help", Icon: "phone"},
	},
}

// ForType возвращает рекомендации для типа инцидента.
// Неизвестный тип получает общий набор.
func ForType(t models.IncidentType) []models.GuidanceItem {
	if items, ok := byType[t]; ok {
		return items
	}
	return byType[models.TypeOther]
}
