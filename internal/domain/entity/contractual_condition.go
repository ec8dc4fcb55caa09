package entity

import "github.com/shopspring/decimal"

// Periodicidades de facturación.
var Periodicities = []string{"DIARIA", "SEMANAL", "MENSUAL", "ANUAL"}

// Tipos de contrato.
var ContractTypes = []string{"TEMPORAL", "PERMANENTE"}

// ContractualCondition condiciones pactadas con un cliente.
type ContractualCondition struct {
	ID               int             `json:"condicionContractualId"`
	ClientID         int             `json:"clienteId"`
	Client           *Client         `json:"cliente,omitempty"`
	StartDate        Date            `json:"fecha_inicio"`
	EndDate          Date            `json:"fecha_fin"`
	Terms            string          `json:"condiciones_especificas"`
	Rate             decimal.Decimal `json:"tarifa"`
	Periodicity      string          `json:"periodicidad"`
	Status           string          `json:"estado"`
	ContractType     string          `json:"tipo_de_contrato"`
	ToiletCount      int             `json:"cantidad_banos"`
	RentalRate       decimal.Decimal `json:"tarifa_alquiler"`
	InstallationRate decimal.Decimal `json:"tarifa_instalacion"`
	CleaningRate     decimal.Decimal `json:"tarifa_limpieza"`
}

// ClientRef id del cliente, venga como campo o embebido.
func (c ContractualCondition) ClientRef() int {
	if c.ClientID == 0 && c.Client != nil {
		return c.Client.ID
	}
	return c.ClientID
}

// ClientName nombre del cliente si vino embebido.
func (c ContractualCondition) ClientName() string {
	if c.Client != nil {
		return c.Client.Name
	}
	return "—"
}
