package documents

import (
	"fmt"
	"time"
)

// Printed labels. These strings are part of the document format and must not
// change.
const (
	LabelInspectionTitle = "REPORTE DE INSPECCIÓN DATA CENTER"
	LabelPermitAnnex     = "ANEXO 1"
	LabelPermitTitle     = "PERMISO DE TRABAJO O ACTIVIDAD EN DATA CENTER"

	LabelCategoryClimate    = "OPERACIONES DE CLIMA Y CONTROL"
	LabelCategoryElectrical = "INSTALACIONES ELÉCTRICAS"
	LabelCategorySecurity   = "SEGURIDAD"

	LabelGeneralObservations = "OBSERVACIONES GENERALES:"
	LabelSignatures          = "FIRMAS:"
	LabelInspector           = "Inspector"
	LabelSupervisor          = "Supervisor"

	LabelName             = "Nombre:"
	LabelIdentification   = "Identificación:"
	LabelCompany          = "Empresa:"
	LabelAccessReason     = "Motivo del acceso:"
	LabelEquipmentTools   = "Equipos o herramientas que ingresan:"
	LabelEntryDate        = "Fecha de ingreso:"
	LabelEntryTime        = "Hora de ingreso:"
	LabelExitDate         = "Fecha de salida:"
	LabelExitTime         = "Hora de salida:"
	LabelAuthorizedPerson = "Persona que autoriza el acceso (nombre y cargo):"
	LabelObservations     = "Observaciones:"

	LabelProviderSignature     = "Firma Proveedor:"
	LabelDCManagerSignature    = "Firma DC Manager:"
	LabelCollaboratorSignature = "Firma Colaborador:"

	PlaceholderDate = "___/___/______"
	PlaceholderTime = "___:___"
)

const (
	isoDate   = "2006-01-02"
	clockTime = "15:04"
	// Spanish short date, day first without zero padding.
	spanishDate = "2/1/2006"
)

// InspectionFileName names the report of an inspection.
func InspectionFileName(in *Inspection) string {
	return fmt.Sprintf("Inspeccion_%s_%s_%s.pdf", in.Datacenter, in.Date, in.Shift)
}

// WorkPermitFileName names the form of a work permit.
func WorkPermitFileName(p *WorkPermit) string {
	return fmt.Sprintf("Permiso_Trabajo_%s_%s.pdf", p.ID, p.EntryDate)
}

// formatDate renders an ISO date the Spanish way. Unparseable input is
// returned unchanged.
func formatDate(iso string) string {
	d, err := time.Parse(isoDate, iso)
	if err != nil {
		return iso
	}
	return d.Format(spanishDate)
}

func pageLabel(page, total int) string {
	return fmt.Sprintf("Página %d de %d", page+1, total)
}
