package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/beiplas/nexpot/internal/application/dto"
	"github.com/beiplas/nexpot/internal/application/wizardsession"
	"github.com/beiplas/nexpot/internal/domain/layout"
)

// WizardHandler endpoints del ciclo de vida de sesiones del asistente.
type WizardHandler struct {
	sessions *wizardsession.Manager
}

func NewWizardHandler(sessions *wizardsession.Manager) *WizardHandler {
	return &WizardHandler{sessions: sessions}
}

// snapshot arma la vista observable de la sesión. El cierre solo se incluye en
// el último paso, cuando todos los detalles están validados y los totales
// tienen sentido.
func snapshot(s *wizardsession.Session) dto.SessionResponse {
	w := s.Wizard
	editingID, _ := w.IsEditing()
	header := w.Header()

	resp := dto.SessionResponse{
		ID:             s.ID,
		CurrentStep:    w.CurrentStep(),
		TotalSteps:     w.TotalSteps(),
		EditingOrderID: editingID,
		ManualCode:     w.ManualCode(),
		CanSubmit:      w.CanSubmit(),
		ErrorSteps:     w.ErrorSteps(),
		StepErrors:     w.StepErrors(w.CurrentStep()),
		Header: dto.HeaderResponse{
			CustomerID:      header.CustomerID,
			EmployeeID:      header.EmployeeID,
			OrderedQuantity: header.OrderedQuantity,
		},
		Detail: dto.FromDetail(w.Buffer()),
	}

	if w.CanSubmit() {
		closing := w.Closing()
		order := w.BuildOrder()
		cr := &dto.ClosingResponse{
			PaymentMethod: int(closing.Payment.Method),
			PaymentTerm:   closing.Payment.PaymentTerm,
			Advance:       closing.Payment.Advance,
			Observations:  closing.Observations,
			HasIVA:        closing.HasIVA,
			Subtotal:      order.Subtotal,
			IVA:           order.IVA,
			Total:         order.Total,
			Debt:          order.Debt(),
		}
		if !closing.DeliveryDate.IsZero() {
			cr.DeliveryDate = closing.DeliveryDate.Format("2006-01-02")
		}
		resp.Closing = cr
	}
	return resp
}

// Start POST /api/wizard/sessions
func (h *WizardHandler) Start(c *fiber.Ctx) error {
	s, err := h.sessions.Start(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(snapshot(s))
}

// StartEdit POST /api/wizard/sessions/from-order/:orderId
func (h *WizardHandler) StartEdit(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return badBody(c)
	}
	s, err := h.sessions.StartEdit(c.Context(), orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(snapshot(s))
}

// Get GET /api/wizard/sessions/:id
func (h *WizardHandler) Get(c *fiber.Ctx) error {
	s, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snapshot(s))
}

// PatchHeader PATCH /api/wizard/sessions/:id/header
func (h *WizardHandler) PatchHeader(c *fiber.Ctx) error {
	var in dto.HeaderPatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	var resp dto.SessionResponse
	err := h.sessions.With(c.Params("id"), func(s *wizardsession.Session) error {
		if err := s.Wizard.ApplyHeader(in.ToPatch()); err != nil {
			return err
		}
		resp = snapshot(s)
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PatchDetail PATCH /api/wizard/sessions/:id/detail
func (h *WizardHandler) PatchDetail(c *fiber.Ctx) error {
	var in dto.DetailPatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	var resp dto.SessionResponse
	err := h.sessions.With(c.Params("id"), func(s *wizardsession.Session) error {
		if err := s.Wizard.ApplyDetail(in.ToPatch()); err != nil {
			return err
		}
		resp = snapshot(s)
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PatchClosing PATCH /api/wizard/sessions/:id/closing
func (h *WizardHandler) PatchClosing(c *fiber.Ctx) error {
	var in dto.ClosingPatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	var resp dto.SessionResponse
	err := h.sessions.With(c.Params("id"), func(s *wizardsession.Session) error {
		if err := s.Wizard.ApplyClosing(in.ToPatch()); err != nil {
			return err
		}
		resp = snapshot(s)
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Next POST /api/wizard/sessions/:id/next — si el paso actual no valida,
// responde 422 con los errores de campo y la sesión se queda donde está.
func (h *WizardHandler) Next(c *fiber.Ctx) error {
	var resp dto.SessionResponse
	var stepErrs map[string]string
	err := h.sessions.With(c.Params("id"), func(s *wizardsession.Session) error {
		errs, err := s.Wizard.Next()
		if err != nil {
			return err
		}
		if errs.HasErrors() {
			stepErrs = errs
			return nil
		}
		resp = snapshot(s)
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}
	if stepErrs != nil {
		return fieldErrors(c, stepErrs)
	}
	return c.JSON(resp)
}

// Previous POST /api/wizard/sessions/:id/previous
func (h *WizardHandler) Previous(c *fiber.Ctx) error {
	var resp dto.SessionResponse
	err := h.sessions.With(c.Params("id"), func(s *wizardsession.Session) error {
		if err := s.Wizard.Previous(); err != nil {
			return err
		}
		resp = snapshot(s)
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// SelectReference POST /api/wizard/sessions/:id/reference/:refId
func (h *WizardHandler) SelectReference(c *fiber.Ctx) error {
	refID, err := strconv.Atoi(c.Params("refId"))
	if err != nil {
		return badBody(c)
	}
	if err := h.sessions.SelectReference(c.Context(), c.Params("id"), refID); err != nil {
		return respondError(c, err)
	}
	s, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snapshot(s))
}

// SetManualCode PUT /api/wizard/sessions/:id/manual-code
func (h *WizardHandler) SetManualCode(c *fiber.Ctx) error {
	var in struct {
		Manual bool `json:"manual"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	var resp dto.SessionResponse
	err := h.sessions.With(c.Params("id"), func(s *wizardsession.Session) error {
		s.Wizard.SetManualCode(in.Manual)
		resp = snapshot(s)
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Layout GET /api/wizard/sessions/:id/layout — descriptor de filas del
// formulario de detalle para el estado actual del buffer.
func (h *WizardHandler) Layout(c *fiber.Ctx) error {
	var rows []layout.Row
	err := h.sessions.With(c.Params("id"), func(s *wizardsession.Session) error {
		rows = layoutRows(s)
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// Submit POST /api/wizard/sessions/:id/submit
func (h *WizardHandler) Submit(c *fiber.Ctx) error {
	res, errs, err := h.sessions.Submit(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if errs.HasErrors() {
		return fieldErrors(c, errs)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SubmitResponse{
		OrderID:         res.OrderID,
		PaymentID:       res.PaymentID,
		DetailIDs:       res.DetailIDs,
		FailedDetailIDs: res.FailedDetailIDs,
	})
}

// Cancel DELETE /api/wizard/sessions/:id
func (h *WizardHandler) Cancel(c *fiber.Ctx) error {
	if err := h.sessions.Cancel(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// layoutRows descriptor de layout para el buffer actual; fuera de un paso de
// detalle devuelve una lista vacía.
func layoutRows(s *wizardsession.Session) []layout.Row {
	d := s.Wizard.Buffer()
	if d == nil {
		return []layout.Row{}
	}
	return layout.Rows(layout.Input{
		ProductTypeID: d.Config.ProductTypeID,
		MaterialID:    d.Config.MaterialID,
		GussetsType:   d.Config.GussetsType,
		FlapType:      d.Config.FlapType,
		HasPrint:      d.Config.HasPrint,
	}, s.Catalog)
}
