package http

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/application/usecase"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/infrastructure/pdf"
)

// Definición de las secciones de cada dominio: columnas, formulario y operaciones.
// Las variantes de solo lectura (supervisor) se obtienen con readOnly.

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func intStr(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func decStr(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return ""
}

// noFilter adapta un List sin filtro a la firma de Section.
func noFilter[T any](fn func(context.Context, dto.ListQuery) (*dto.Page[T], error)) func(context.Context, dto.ListQuery, string) (*dto.Page[T], error) {
	return func(ctx context.Context, q dto.ListQuery, _ string) (*dto.Page[T], error) {
		return fn(ctx, q)
	}
}

// readOnly quita alta, edición, baja y acciones.
func readOnly[T, In any](s *Section[T, In]) *Section[T, In] {
	cp := *s
	cp.Create, cp.Update, cp.Delete = nil, nil, nil
	cp.Actions = nil
	cp.Links = nil
	return &cp
}

var lookupQuery = dto.ListQuery{Page: 1, Limit: 100}

func clientOptions(clients *usecase.ClientUseCase) func(context.Context) ([]Option, error) {
	return func(ctx context.Context) ([]Option, error) {
		page, err := clients.List(ctx, lookupQuery)
		if err != nil {
			return nil, err
		}
		out := make([]Option, 0, len(page.Data))
		for _, c := range page.Data {
			out = append(out, Option{Value: strconv.Itoa(c.ID), Label: c.Name})
		}
		return out, nil
	}
}

func employeeOptions(employees *usecase.EmployeeUseCase) func(context.Context) ([]Option, error) {
	return func(ctx context.Context) ([]Option, error) {
		page, err := employees.List(ctx, lookupQuery)
		if err != nil {
			return nil, err
		}
		out := make([]Option, 0, len(page.Data))
		for _, e := range page.Data {
			out = append(out, Option{Value: strconv.Itoa(e.ID), Label: e.FullName()})
		}
		return out, nil
	}
}

// lookup un solo select dependiente del backend.
func lookup(field string, load func(context.Context) ([]Option, error)) func(context.Context) (map[string][]Option, error) {
	return func(ctx context.Context) (map[string][]Option, error) {
		opts, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return map[string][]Option{field: opts}, nil
	}
}

// ── Clientes ────────────────────────────────────────────────────────────────────

func clientSection(uc *usecase.ClientUseCase, gen *pdf.ListingGenerator) *Section[entity.Client, dto.ClientRequest] {
	return &Section[entity.Client, dto.ClientRequest]{
		Slug: "clientes", Title: "Clientes", Singular: "cliente",
		Columns: []Column[entity.Client]{
			{"Nombre", func(c entity.Client) string { return c.Name }},
			{"CUIT", func(c entity.Client) string { return c.TaxID }},
			{"Email", func(c entity.Client) string { return c.Email }},
			{"Teléfono", func(c entity.Client) string { return c.Phone }},
			{"Contacto", func(c entity.Client) string { return c.MainContact }},
			{"Estado", func(c entity.Client) string { return statusLabel(c.Status) }},
		},
		ID: func(c entity.Client) int { return c.ID },
		Fields: func(c *entity.Client) []Field {
			if c == nil {
				c = &entity.Client{Status: entity.ClientActive}
			}
			return []Field{
				{Name: "nombre", Label: "Nombre", Type: "text", Value: c.Name, Required: true},
				{Name: "cuit", Label: "CUIT", Type: "text", Value: c.TaxID, Required: true},
				{Name: "email", Label: "Email", Type: "email", Value: c.Email},
				{Name: "direccion", Label: "Dirección", Type: "text", Value: c.Address, Required: true},
				{Name: "telefono", Label: "Teléfono", Type: "text", Value: c.Phone},
				{Name: "contacto_principal", Label: "Contacto principal", Type: "text", Value: c.MainContact},
				{Name: "estado", Label: "Estado", Type: "select", Value: c.Status,
					Options: options(entity.ClientActive, entity.ClientInactive)},
			}
		},
		Parse: func(c *fiber.Ctx) dto.ClientRequest {
			return dto.ClientRequest{
				Name:        formString(c, "nombre"),
				TaxID:       formString(c, "cuit"),
				Email:       formString(c, "email"),
				Address:     formString(c, "direccion"),
				Phone:       formString(c, "telefono"),
				MainContact: formString(c, "contacto_principal"),
				Status:      formString(c, "estado"),
			}
		},
		List:   noFilter(uc.List),
		Get:    uc.Get,
		Create: uc.Create,
		Update: uc.Update,
		Delete: uc.Delete,
		PDF:    gen,
	}
}

// ── Empleados ───────────────────────────────────────────────────────────────────

var employeeStatuses = []string{entity.EmployeeAvailable, entity.EmployeeAssigned, entity.EmployeeLeave, entity.EmployeeInactive}

func employeeSection(uc *usecase.EmployeeUseCase, gen *pdf.ListingGenerator) *Section[entity.Employee, dto.EmployeeRequest] {
	return &Section[entity.Employee, dto.EmployeeRequest]{
		Slug: "empleados", Title: "Empleados", Singular: "empleado",
		Columns: []Column[entity.Employee]{
			{"Legajo", func(e entity.Employee) string { return e.FileNumber }},
			{"Apellido y nombre", func(e entity.Employee) string { return e.FullName() }},
			{"Documento", func(e entity.Employee) string { return e.Document }},
			{"Cargo", func(e entity.Employee) string { return e.Position }},
			{"Teléfono", func(e entity.Employee) string { return e.Phone }},
			{"Ingreso", func(e entity.Employee) string { return e.HiredAt.String() }},
			{"Estado", func(e entity.Employee) string { return statusLabel(e.Status) }},
		},
		ID: func(e entity.Employee) int { return e.ID },
		Fields: func(e *entity.Employee) []Field {
			if e == nil {
				e = &entity.Employee{Status: entity.EmployeeAvailable}
			}
			return []Field{
				{Name: "nombre", Label: "Nombre", Type: "text", Value: e.FirstName, Required: true},
				{Name: "apellido", Label: "Apellido", Type: "text", Value: e.LastName, Required: true},
				{Name: "documento", Label: "Documento", Type: "text", Value: e.Document, Required: true},
				{Name: "cuil", Label: "CUIL", Type: "text", Value: e.CUIL},
				{Name: "telefono", Label: "Teléfono", Type: "text", Value: e.Phone, Required: true},
				{Name: "email", Label: "Email", Type: "email", Value: e.Email, Required: true},
				{Name: "direccion", Label: "Dirección", Type: "text", Value: e.Address},
				{Name: "fecha_nacimiento", Label: "Fecha de nacimiento", Type: "date", Value: e.BirthDate.Input()},
				{Name: "fecha_contratacion", Label: "Fecha de contratación", Type: "date", Value: e.HiredAt.Input(), Required: true},
				{Name: "cargo", Label: "Cargo", Type: "text", Value: e.Position, Required: true},
				{Name: "numero_legajo", Label: "Legajo", Type: "text", Value: e.FileNumber},
				{Name: "estado", Label: "Estado", Type: "select", Value: e.Status, Options: options(employeeStatuses...)},
			}
		},
		Parse: func(c *fiber.Ctx) dto.EmployeeRequest {
			return dto.EmployeeRequest{
				FirstName:  formString(c, "nombre"),
				LastName:   formString(c, "apellido"),
				Document:   formString(c, "documento"),
				CUIL:       formString(c, "cuil"),
				Phone:      formString(c, "telefono"),
				Email:      formString(c, "email"),
				Address:    formString(c, "direccion"),
				BirthDate:  formDate(c, "fecha_nacimiento"),
				HiredAt:    formDate(c, "fecha_contratacion"),
				Position:   formString(c, "cargo"),
				FileNumber: formString(c, "numero_legajo"),
				Status:     formString(c, "estado"),
			}
		},
		List:   noFilter(uc.List),
		Get:    uc.Get,
		Create: uc.Create,
		Update: uc.Update,
		Delete: uc.Delete,
		PDF:    gen,
	}
}

// ── Vehículos ───────────────────────────────────────────────────────────────────

var vehicleStatuses = []string{entity.VehicleAvailable, entity.VehicleAssigned, entity.VehicleMaintenance, entity.VehicleOutOfOrder}

func vehicleSection(uc *usecase.VehicleUseCase, gen *pdf.ListingGenerator) *Section[entity.Vehicle, dto.VehicleRequest] {
	return &Section[entity.Vehicle, dto.VehicleRequest]{
		Slug: "vehiculos", Title: "Vehículos", Singular: "vehículo",
		Columns: []Column[entity.Vehicle]{
			{"Interno", func(v entity.Vehicle) string { return v.InternalNumber }},
			{"Patente", func(v entity.Vehicle) string { return v.Plate }},
			{"Marca y modelo", func(v entity.Vehicle) string { return strings.TrimSpace(v.Brand + " " + v.Model) }},
			{"Año", func(v entity.Vehicle) string { return itoa(v.Year) }},
			{"Vence VTV", func(v entity.Vehicle) string { return v.InspectionExpires.String() }},
			{"Vence seguro", func(v entity.Vehicle) string { return v.InsuranceExpires.String() }},
			{"Estado", func(v entity.Vehicle) string { return statusLabel(v.Status) }},
		},
		ID: func(v entity.Vehicle) int { return v.ID },
		Fields: func(v *entity.Vehicle) []Field {
			if v == nil {
				v = &entity.Vehicle{Status: entity.VehicleAvailable}
			}
			return []Field{
				{Name: "numeroInterno", Label: "Número interno", Type: "text", Value: v.InternalNumber},
				{Name: "placa", Label: "Patente", Type: "text", Value: v.Plate, Required: true},
				{Name: "marca", Label: "Marca", Type: "text", Value: v.Brand, Required: true},
				{Name: "modelo", Label: "Modelo", Type: "text", Value: v.Model, Required: true},
				{Name: "anio", Label: "Año", Type: "number", Value: itoa(v.Year), Required: true},
				{Name: "tipoCabina", Label: "Tipo de cabina", Type: "text", Value: v.CabinType},
				{Name: "fechaVencimientoVTV", Label: "Vencimiento VTV", Type: "date", Value: v.InspectionExpires.Input()},
				{Name: "fechaVencimientoSeguro", Label: "Vencimiento seguro", Type: "date", Value: v.InsuranceExpires.Input()},
				{Name: "esExterno", Label: "Vehículo externo", Type: "checkbox", Value: boolStr(v.External)},
				{Name: "estado", Label: "Estado", Type: "select", Value: v.Status, Options: options(vehicleStatuses...)},
			}
		},
		Parse: func(c *fiber.Ctx) dto.VehicleRequest {
			return dto.VehicleRequest{
				InternalNumber:    formString(c, "numeroInterno"),
				Plate:             strings.ToUpper(formString(c, "placa")),
				Brand:             formString(c, "marca"),
				Model:             formString(c, "modelo"),
				Year:              formInt(c, "anio"),
				CabinType:         formString(c, "tipoCabina"),
				InspectionExpires: formDate(c, "fechaVencimientoVTV"),
				InsuranceExpires:  formDate(c, "fechaVencimientoSeguro"),
				External:          formBool(c, "esExterno"),
				Status:            formString(c, "estado"),
			}
		},
		List:   noFilter(uc.List),
		Get:    uc.Get,
		Create: uc.Create,
		Update: uc.Update,
		Delete: uc.Delete,
		PDF:    gen,
	}
}

// ── Baños químicos ──────────────────────────────────────────────────────────────

func toiletSection(uc *usecase.ChemicalToiletUseCase, gen *pdf.ListingGenerator) *Section[entity.ChemicalToilet, dto.ChemicalToiletRequest] {
	return &Section[entity.ChemicalToilet, dto.ChemicalToiletRequest]{
		Slug: "sanitarios", Title: "Baños químicos", Singular: "baño",
		Columns: []Column[entity.ChemicalToilet]{
			{"Código", func(t entity.ChemicalToilet) string { return t.InternalCode }},
			{"Modelo", func(t entity.ChemicalToilet) string { return t.Model }},
			{"Adquisición", func(t entity.ChemicalToilet) string { return t.AcquiredAt.String() }},
			{"Estado", func(t entity.ChemicalToilet) string { return statusLabel(t.Status) }},
		},
		ID: func(t entity.ChemicalToilet) int { return t.ID },
		Fields: func(t *entity.ChemicalToilet) []Field {
			if t == nil {
				t = &entity.ChemicalToilet{Status: entity.ToiletAvailable}
			}
			return []Field{
				{Name: "codigo_interno", Label: "Código interno", Type: "text", Value: t.InternalCode, Required: true},
				{Name: "modelo", Label: "Modelo", Type: "text", Value: t.Model, Required: true},
				{Name: "fecha_adquisicion", Label: "Fecha de adquisición", Type: "date", Value: t.AcquiredAt.Input(), Required: true},
				{Name: "estado", Label: "Estado", Type: "select", Value: t.Status, Options: options(entity.ToiletStatuses...)},
			}
		},
		Parse: func(c *fiber.Ctx) dto.ChemicalToiletRequest {
			return dto.ChemicalToiletRequest{
				InternalCode: formString(c, "codigo_interno"),
				Model:        formString(c, "modelo"),
				AcquiredAt:   formDate(c, "fecha_adquisicion"),
				Status:       formString(c, "estado"),
			}
		},
		List:   noFilter(uc.List),
		Get:    uc.Get,
		Create: uc.Create,
		Update: uc.Update,
		Delete: uc.Delete,
		PDF:    gen,
	}
}

// ── Usuarios ────────────────────────────────────────────────────────────────────

var userRoles = []string{entity.RoleAdmin, entity.RoleSupervisor, entity.RoleOperario}

func userSection(uc *usecase.UserUseCase, employees *usecase.EmployeeUseCase, gen *pdf.ListingGenerator) *Section[entity.User, dto.UserRequest] {
	return &Section[entity.User, dto.UserRequest]{
		Slug: "usuarios", Title: "Usuarios", Singular: "usuario",
		Columns: []Column[entity.User]{
			{"Nombre", func(u entity.User) string { return u.Name }},
			{"Email", func(u entity.User) string { return u.Email }},
			{"Roles", func(u entity.User) string { return strings.Join(u.Roles, ", ") }},
			{"Estado", func(u entity.User) string { return statusLabel(u.Status) }},
		},
		ID: func(u entity.User) int { return u.ID },
		Actions: []RowAction{{
			Label: "Cambiar estado", Suffix: "/estado", Field: "estado",
			Options: options(entity.UserActive, entity.UserInactive),
			Success: "Estado del usuario actualizado",
			Run: func(ctx context.Context, id int, v string) error {
				_, err := uc.ChangeStatus(ctx, id, v)
				return err
			},
		}},
		Fields: func(u *entity.User) []Field {
			help := ""
			if u == nil {
				u = &entity.User{Roles: []string{entity.RoleOperario}}
			} else {
				help = "Dejar vacío para conservar la contraseña actual"
			}
			return []Field{
				{Name: "nombre", Label: "Nombre", Type: "text", Value: u.Name, Required: true},
				{Name: "email", Label: "Email", Type: "email", Value: u.Email, Required: true},
				{Name: "password", Label: "Contraseña", Type: "password", Help: help},
				{Name: "roles", Label: "Roles", Type: "multiselect", Values: u.Roles, Options: options(userRoles...)},
				{Name: "empleadoId", Label: "Empleado vinculado", Type: "select", Value: intStr(u.EmployeeID),
					Help: "Requerido para operarios"},
			}
		},
		Lookups: lookup("empleadoId", func(ctx context.Context) ([]Option, error) {
			opts, err := employeeOptions(employees)(ctx)
			if err != nil {
				return nil, err
			}
			return append([]Option{{Value: "", Label: "Sin empleado"}}, opts...), nil
		}),
		Parse: func(c *fiber.Ctx) dto.UserRequest {
			return dto.UserRequest{
				Name:       formString(c, "nombre"),
				Email:      formString(c, "email"),
				Password:   c.FormValue("password"),
				Roles:      formStrings(c, "roles"),
				EmployeeID: formIntPtr(c, "empleadoId"),
			}
		},
		List:   noFilter(uc.List),
		Get:    uc.Get,
		Create: uc.Create,
		Update: uc.Update,
		Delete: uc.Delete,
		PDF:    gen,
	}
}

// ── Condiciones contractuales ───────────────────────────────────────────────────

var conditionStatuses = []string{"ACTIVO", "INACTIVO", "TERMINADO"}

func conditionSection(uc *usecase.ContractualConditionUseCase, clients *usecase.ClientUseCase, gen *pdf.ListingGenerator) *Section[entity.ContractualCondition, dto.ContractualConditionRequest] {
	return &Section[entity.ContractualCondition, dto.ContractualConditionRequest]{
		Slug: "condiciones", Title: "Condiciones contractuales", Singular: "condición contractual", Feminine: true,
		Columns: []Column[entity.ContractualCondition]{
			{"Cliente", func(c entity.ContractualCondition) string { return c.ClientName() }},
			{"Contrato", func(c entity.ContractualCondition) string { return statusLabel(c.ContractType) }},
			{"Inicio", func(c entity.ContractualCondition) string { return c.StartDate.String() }},
			{"Fin", func(c entity.ContractualCondition) string { return c.EndDate.String() }},
			{"Tarifa", func(c entity.ContractualCondition) string { return formatMoney(c.Rate) }},
			{"Periodicidad", func(c entity.ContractualCondition) string { return statusLabel(c.Periodicity) }},
			{"Baños", func(c entity.ContractualCondition) string { return strconv.Itoa(c.ToiletCount) }},
			{"Estado", func(c entity.ContractualCondition) string { return statusLabel(c.Status) }},
		},
		ID: func(c entity.ContractualCondition) int { return c.ID },
		Fields: func(c *entity.ContractualCondition) []Field {
			clientID := ""
			if c == nil {
				c = &entity.ContractualCondition{Status: "ACTIVO", Periodicity: "MENSUAL", ContractType: "TEMPORAL"}
			} else {
				clientID = itoa(c.ClientRef())
			}
			return []Field{
				{Name: "clienteId", Label: "Cliente", Type: "select", Value: clientID, Required: true},
				{Name: "fecha_inicio", Label: "Fecha de inicio", Type: "date", Value: c.StartDate.Input(), Required: true},
				{Name: "fecha_fin", Label: "Fecha de fin", Type: "date", Value: c.EndDate.Input(), Required: true},
				{Name: "tipo_de_contrato", Label: "Tipo de contrato", Type: "select", Value: c.ContractType, Options: options(entity.ContractTypes...)},
				{Name: "periodicidad", Label: "Periodicidad", Type: "select", Value: c.Periodicity, Options: options(entity.Periodicities...)},
				{Name: "tarifa", Label: "Tarifa", Type: "number", Step: "0.01", Value: decStr(c.Rate), Required: true},
				{Name: "cantidad_banos", Label: "Cantidad de baños", Type: "number", Value: strconv.Itoa(c.ToiletCount)},
				{Name: "tarifa_alquiler", Label: "Tarifa de alquiler", Type: "number", Step: "0.01", Value: decStr(c.RentalRate)},
				{Name: "tarifa_instalacion", Label: "Tarifa de instalación", Type: "number", Step: "0.01", Value: decStr(c.InstallationRate)},
				{Name: "tarifa_limpieza", Label: "Tarifa de limpieza", Type: "number", Step: "0.01", Value: decStr(c.CleaningRate)},
				{Name: "estado", Label: "Estado", Type: "select", Value: c.Status, Options: options(conditionStatuses...)},
				{Name: "condiciones_especificas", Label: "Condiciones específicas", Type: "textarea", Value: c.Terms},
			}
		},
		Lookups: lookup("clienteId", clientOptions(clients)),
		Parse: func(c *fiber.Ctx) dto.ContractualConditionRequest {
			return dto.ContractualConditionRequest{
				ClientID:         formInt(c, "clienteId"),
				StartDate:        formDate(c, "fecha_inicio"),
				EndDate:          formDate(c, "fecha_fin"),
				Terms:            formString(c, "condiciones_especificas"),
				Rate:             formDecimal(c, "tarifa"),
				Periodicity:      formString(c, "periodicidad"),
				Status:           formString(c, "estado"),
				ContractType:     formString(c, "tipo_de_contrato"),
				ToiletCount:      formInt(c, "cantidad_banos"),
				RentalRate:       formDecimal(c, "tarifa_alquiler"),
				InstallationRate: formDecimal(c, "tarifa_instalacion"),
				CleaningRate:     formDecimal(c, "tarifa_limpieza"),
			}
		},
		List:   noFilter(uc.List),
		Get:    uc.Get,
		Create: uc.Create,
		Update: uc.Update,
		Delete: uc.Delete,
		PDF:    gen,
	}
}

// ── Servicios ───────────────────────────────────────────────────────────────────

func serviceSection(uc *usecase.ServiceUseCase, clients *usecase.ClientUseCase, gen *pdf.ListingGenerator) *Section[entity.Service, dto.ServiceRequest] {
	return &Section[entity.Service, dto.ServiceRequest]{
		Slug: "servicios", Title: "Servicios", Singular: "servicio",
		Columns: []Column[entity.Service]{
			{"Fecha", func(s entity.Service) string { return s.ScheduledAt.String() }},
			{"Cliente", func(s entity.Service) string { return s.ClientName() }},
			{"Tipo", func(s entity.Service) string { return statusLabel(s.Type) }},
			{"Ubicación", func(s entity.Service) string { return s.Location }},
			{"Baños", func(s entity.Service) string { return strconv.Itoa(s.ToiletCount) }},
			{"Estado", func(s entity.Service) string { return statusLabel(s.Status) }},
		},
		ID:     func(s entity.Service) int { return s.ID },
		Filter: &Filter{Param: "estado", Label: "Estado", Options: options(entity.ServiceStatuses...)},
		Actions: []RowAction{{
			Label: "Cambiar estado", Suffix: "/estado", Field: "estado",
			Options: options(entity.ServiceStatuses...),
			Success: "Estado del servicio actualizado",
			Run: func(ctx context.Context, id int, v string) error {
				_, err := uc.ChangeStatus(ctx, id, v)
				return err
			},
		}},
		Fields: func(s *entity.Service) []Field {
			clientID := ""
			if s == nil {
				s = &entity.Service{Type: entity.ServiceInstallation}
			} else {
				clientID = itoa(s.ClientID)
			}
			return []Field{
				{Name: "clienteId", Label: "Cliente", Type: "select", Value: clientID, Required: true},
				{Name: "fechaProgramada", Label: "Fecha programada", Type: "date", Value: s.ScheduledAt.Input(), Required: true},
				{Name: "tipoServicio", Label: "Tipo de servicio", Type: "select", Value: s.Type, Options: options(entity.ServiceTypes...)},
				{Name: "ubicacion", Label: "Ubicación", Type: "text", Value: s.Location, Required: true},
				{Name: "cantidadBanos", Label: "Cantidad de baños", Type: "number", Value: strconv.Itoa(s.ToiletCount)},
				{Name: "cantidadEmpleados", Label: "Cantidad de empleados", Type: "number", Value: strconv.Itoa(s.EmployeeCount)},
				{Name: "cantidadVehiculos", Label: "Cantidad de vehículos", Type: "number", Value: strconv.Itoa(s.VehicleCount)},
				{Name: "notas", Label: "Notas", Type: "textarea", Value: s.Notes},
			}
		},
		Lookups: lookup("clienteId", clientOptions(clients)),
		Parse: func(c *fiber.Ctx) dto.ServiceRequest {
			return dto.ServiceRequest{
				ClientID:      formInt(c, "clienteId"),
				ScheduledAt:   formDate(c, "fechaProgramada"),
				Type:          formString(c, "tipoServicio"),
				ToiletCount:   formInt(c, "cantidadBanos"),
				EmployeeCount: formInt(c, "cantidadEmpleados"),
				VehicleCount:  formInt(c, "cantidadVehiculos"),
				Location:      formString(c, "ubicacion"),
				Notes:         formString(c, "notas"),
			}
		},
		List:   uc.List,
		Get:    uc.Get,
		Create: uc.Create,
		Update: uc.Update,
		Delete: uc.Delete,
		PDF:    gen,
	}
}

// ── Adelantos de salario ────────────────────────────────────────────────────────

var advanceStatusOptions = []Option{
	{Value: entity.AdvancePending, Label: "Pendiente"},
	{Value: entity.AdvanceApproved, Label: "Aprobado"},
	{Value: entity.AdvanceRejected, Label: "Rechazado"},
}

func advanceStatusLabel(s string) string {
	for _, o := range advanceStatusOptions {
		if o.Value == s {
			return o.Label
		}
	}
	return statusLabel(s)
}

func advanceSection(uc *usecase.SalaryAdvanceUseCase, gen *pdf.ListingGenerator) *Section[entity.SalaryAdvance, dto.SalaryAdvanceRequest] {
	return &Section[entity.SalaryAdvance, dto.SalaryAdvanceRequest]{
		Slug: "adelantos", Title: "Adelantos de salario", Singular: "adelanto",
		Columns: []Column[entity.SalaryAdvance]{
			{"Fecha", func(a entity.SalaryAdvance) string { return a.CreatedAt.String() }},
			{"Empleado", func(a entity.SalaryAdvance) string { return a.EmployeeName() }},
			{"Monto", func(a entity.SalaryAdvance) string { return formatMoney(a.Amount) }},
			{"Motivo", func(a entity.SalaryAdvance) string { return a.Reason }},
			{"Estado", func(a entity.SalaryAdvance) string { return advanceStatusLabel(a.Status) }},
			{"Comentario", func(a entity.SalaryAdvance) string { return a.Comment }},
		},
		ID:     func(a entity.SalaryAdvance) int { return a.ID },
		Filter: &Filter{Param: "status", Label: "Estado", Options: advanceStatusOptions},
		Actions: []RowAction{
			{
				Label: "Aprobar", Suffix: "/aprobar", Field: "comentario", Style: "primary",
				Success: "Adelanto aprobado",
				Run: func(ctx context.Context, id int, v string) error {
					_, err := uc.Approve(ctx, id, v)
					return err
				},
			},
			{
				Label: "Rechazar", Suffix: "/rechazar", Field: "comentario", Style: "danger",
				Success: "Adelanto rechazado",
				Run: func(ctx context.Context, id int, v string) error {
					_, err := uc.Reject(ctx, id, v)
					return err
				},
			},
		},
		List: uc.List,
		PDF:  gen,
	}
}

// ── Licencias ───────────────────────────────────────────────────────────────────

// licenseInput alta de licencia: el empleado va en la ruta del backend, no en el cuerpo.
type licenseInput struct {
	EmployeeID int
	dto.LicenseRequest
}

func licenseSection(uc *usecase.LicenseUseCase, employees *usecase.EmployeeUseCase, gen *pdf.ListingGenerator) *Section[entity.License, licenseInput] {
	return &Section[entity.License, licenseInput]{
		Slug: "licencias", Title: "Licencias de conducir", Singular: "licencia", Feminine: true,
		Columns: licenseColumns,
		ID:      func(l entity.License) int { return l.ID },
		Fields: func(_ *entity.License) []Field {
			return []Field{
				{Name: "empleadoId", Label: "Empleado", Type: "select", Required: true},
				{Name: "categoria", Label: "Categoría", Type: "text", Required: true},
				{Name: "fecha_expedicion", Label: "Fecha de expedición", Type: "date", Required: true},
				{Name: "fecha_vencimiento", Label: "Fecha de vencimiento", Type: "date", Required: true},
			}
		},
		Lookups: lookup("empleadoId", employeeOptions(employees)),
		Parse: func(c *fiber.Ctx) licenseInput {
			return licenseInput{
				EmployeeID: formInt(c, "empleadoId"),
				LicenseRequest: dto.LicenseRequest{
					Category:  strings.ToUpper(formString(c, "categoria")),
					IssuedAt:  formDate(c, "fecha_expedicion"),
					ExpiresAt: formDate(c, "fecha_vencimiento"),
				},
			}
		},
		List: noFilter(uc.List),
		Create: func(ctx context.Context, in licenseInput) (*entity.License, error) {
			if in.EmployeeID <= 0 {
				return nil, &dto.ValidationError{Messages: []string{"Empleado es obligatorio"}}
			}
			return uc.Create(ctx, in.EmployeeID, in.LicenseRequest)
		},
		Delete: uc.Delete,
		PDF:    gen,
	}
}

var licenseColumns = []Column[entity.License]{
	{"Empleado", func(l entity.License) string { return l.EmployeeName() }},
	{"Categoría", func(l entity.License) string { return l.Category }},
	{"Expedición", func(l entity.License) string { return l.IssuedAt.String() }},
	{"Vencimiento", func(l entity.License) string { return l.ExpiresAt.String() }},
}
