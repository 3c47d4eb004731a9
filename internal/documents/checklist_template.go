package documents

import "github.com/google/uuid"

// TemplateItem is one line of the standard shift checklist.
type TemplateItem struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

var checklistTemplate = []TemplateItem{
	{CategoryClimate, "Estado operativo de cada unidad de aire acondicionado (encendido / standby)"},
	{CategoryClimate, "Revisión de temperatura ambiente en DC"},
	{CategoryClimate, "Comprobar que no existan alarmas en los paneles de los aires"},
	{CategoryClimate, "Confirmar que no hay acumulación de polvo o suciedad"},
	{CategoryClimate, "Confirmar que la dirección del flujo de aire es adecuada"},
	{CategoryClimate, "Estado de UPS (alarmas, indicadores, autonomía)"},

	{CategoryElectrical, "Comprobación de tableros eléctricos y breakers"},
	{CategoryElectrical, "Revisión de cables en tomas eléctricas y PDU"},
	{CategoryElectrical, "Revisión visual de paneles y switches bien organizados y peinados"},
	{CategoryElectrical, "Confirmar que no existan cables desconectados o mal ajustados"},
	{CategoryElectrical, "Verificar que no haya exceso de tensión eléctrica en cables"},
	{CategoryElectrical, "Estado de luces LED en servidores, switches (sin alarmas rojas/ámbar)"},

	{CategorySecurity, "Revisión de acceso/cerradura, espacio adecuado, tapas"},
	{CategorySecurity, "Revisión de cerraduras y accesos a HVAC y puertas del datacenter"},
	{CategorySecurity, "Confirmar registros de ingreso en bitácora o sistema biométrico"},
	{CategorySecurity, "Verificar funcionamiento de cámaras de seguridad"},
	{CategorySecurity, "Revisar sensores de humo/incendio y extintores"},
}

// ChecklistTemplate returns a copy of the standard checklist.
func ChecklistTemplate() []TemplateItem {
	out := make([]TemplateItem, len(checklistTemplate))
	copy(out, checklistTemplate)
	return out
}

// NewChecklist returns the standard checklist as pending items with fresh IDs.
func NewChecklist() []ChecklistItem {
	items := make([]ChecklistItem, len(checklistTemplate))
	for i, t := range checklistTemplate {
		items[i] = ChecklistItem{
			ID:          uuid.NewString(),
			Category:    t.Category,
			Description: t.Description,
		}
	}
	return items
}
