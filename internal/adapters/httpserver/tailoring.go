package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
	"github.com/rizqydermawanai-png/kzumi-store/internal/usecase"
)

// Wizard sessions are server-held; the cookie only carries the id. A
// submitted session is dropped from the map.
func (s *Server) wizardSession(w http.ResponseWriter, r *http.Request) (string, *usecase.TailoringSession) {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()
	if c, err := r.Cookie("tailor_sess"); err == nil && c.Value != "" {
		if sess, ok := s.sessions[c.Value]; ok {
			return c.Value, sess
		}
	}
	id := uuid.New().String()
	sess := usecase.NewTailoringSession()
	s.sessions[id] = sess
	http.SetCookie(w, &http.Cookie{Name: "tailor_sess", Value: id, Path: "/", MaxAge: 60 * 60 * 4, HttpOnly: true})
	return id, sess
}

func (s *Server) apiTailoringCatalog(w http.ResponseWriter, r *http.Request) {
	products, err := s.tailoring.Catalog.Products(r.Context())
	if err != nil {
		writeErr(w, 500, err)
		return
	}
	fabrics, err := s.tailoring.Catalog.Fabrics(r.Context())
	if err != nil {
		writeErr(w, 500, err)
		return
	}
	presets, err := s.tailoring.Catalog.Presets(r.Context())
	if err != nil {
		writeErr(w, 500, err)
		return
	}
	writeJSON(w, 200, map[string]any{"products": products, "fabrics": fabrics, "presets": presets})
}

type wizardAction struct {
	Action      string             `json:"action"`
	Product     string             `json:"product,omitempty"`
	Fabric      string             `json:"fabric,omitempty"`
	Color       string             `json:"color,omitempty"`
	Axis        string             `json:"axis,omitempty"`
	Option      string             `json:"option,omitempty"`
	Dimension   string             `json:"dimension,omitempty"`
	ValueCM     float64            `json:"value_cm,omitempty"`
	Size        string             `json:"size,omitempty"`
	Name        string             `json:"name,omitempty"`
	Email       string             `json:"email,omitempty"`
	Phone       string             `json:"phone,omitempty"`
	DesignNotes string             `json:"design_notes,omitempty"`
	Values      map[string]float64 `json:"values,omitempty"`
}

type wizardView struct {
	Product      string                       `json:"product,omitempty"`
	Fabric       string                       `json:"fabric,omitempty"`
	FabricColor  string                       `json:"fabric_color,omitempty"`
	Styles       map[string]string            `json:"styles"`
	Mode         string                       `json:"mode"`
	StandardSize string                       `json:"standard_size,omitempty"`
	Measurements map[domain.Dimension]float64 `json:"measurements"`
	Estimate     int64                        `json:"estimate"`
	Formatted    string                       `json:"formatted_estimate"`
}

func viewOf(sess *usecase.TailoringSession) wizardView {
	v := wizardView{
		Styles:       sess.Styles,
		Mode:         string(sess.Mode),
		StandardSize: sess.StandardSize,
		Measurements: sess.Measurements,
		Estimate:     sess.Estimate(),
		Formatted:    domain.FormatIDR(sess.Estimate()),
	}
	if sess.Product != nil {
		v.Product = sess.Product.Name
	}
	if sess.Fabric != nil {
		v.Fabric = sess.Fabric.Name
		v.FabricColor = sess.FabricColor
	}
	return v
}

// apiTailoringSession is the wizard's single endpoint: GET returns the
// current state and estimate, POST mutates it one action at a time.
func (s *Server) apiTailoringSession(w http.ResponseWriter, r *http.Request) {
	id, sess := s.wizardSession(w, r)
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, 200, viewOf(sess))
	case http.MethodPost:
		var act wizardAction
		if err := json.NewDecoder(io.LimitReader(r.Body, 8192)).Decode(&act); err != nil {
			writeErr(w, 400, err)
			return
		}
		if err := s.applyWizardAction(w, r, id, sess, act); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) applyWizardAction(w http.ResponseWriter, r *http.Request, id string, sess *usecase.TailoringSession, act wizardAction) error {
	switch act.Action {
	case "select_product":
		products, err := s.tailoring.Catalog.Products(r.Context())
		if err != nil {
			return err
		}
		for _, p := range products {
			if strings.EqualFold(p.Name, act.Product) {
				sess.SelectProduct(p)
				writeJSON(w, 200, viewOf(sess))
				return nil
			}
		}
		return domain.ErrNotFound
	case "select_fabric":
		fabrics, err := s.tailoring.Catalog.Fabrics(r.Context())
		if err != nil {
			return err
		}
		for _, f := range fabrics {
			if strings.EqualFold(f.Name, act.Fabric) {
				if act.Color != "" && !contains(f.Colors, act.Color) {
					return errors.New("warna tidak tersedia untuk kain ini")
				}
				if err := sess.SelectFabric(f, act.Color); err != nil {
					return err
				}
				writeJSON(w, 200, viewOf(sess))
				return nil
			}
		}
		return domain.ErrNotFound
	case "select_style":
		if err := sess.SelectStyle(act.Axis, act.Option); err != nil {
			return err
		}
	case "set_measurement":
		if err := sess.SetMeasurement(domain.Dimension(act.Dimension), act.ValueCM); err != nil {
			return err
		}
	case "apply_preset":
		presets, err := s.tailoring.Catalog.Presets(r.Context())
		if err != nil {
			return err
		}
		if err := sess.ApplyPreset(act.Size, presets); err != nil {
			return err
		}
	case "custom_mode":
		sess.SelectCustomMode()
	case "set_contact":
		sess.SetContact(act.Name, act.Email, act.Phone)
		sess.DesignNotes = strings.TrimSpace(act.DesignNotes)
	case "submit":
		req, err := s.tailoring.SubmitSession(r.Context(), sess)
		if err != nil {
			return err
		}
		if s.staff != nil {
			go s.staff.CustomRequest(req)
		}
		s.sessMu.Lock()
		delete(s.sessions, id)
		s.sessMu.Unlock()
		http.SetCookie(w, &http.Cookie{Name: "tailor_sess", Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
		writeJSON(w, 201, map[string]any{"request": req})
		return nil
	default:
		return errors.New("aksi tidak dikenal")
	}
	writeJSON(w, 200, viewOf(sess))
	return nil
}
