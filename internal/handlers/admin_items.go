package handlers

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/nfnt/resize"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/catalog"
)

func (h *AdminHandler) AddItemForm(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("admin_add_item.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	cats, err := h.Store.ListCategories()
	if err != nil {
		http.Error(w, "Error fetching categories", http.StatusInternalServerError)
		return
	}
	s, _ := h.SessionStore.Get(r, adminSessionName)
	data := map[string]interface{}{
		"CsrfField":  csrf.TemplateField(r),
		"Flashes":    GetFlash(s),
		"Categories": cats,
		"Values":     r.Form, // Pre-fill form on error
	}
	s.Save(r, w)
	tmpl.Execute(w, data)
}

// parseItemForm reads the shared item fields and builds a catalog item,
// which validates price and discount as it is constructed.
func parseItemForm(r *http.Request) (*catalog.Item, map[string]string) {
	errors := make(map[string]string)

	name := r.FormValue("name")
	if name == "" {
		errors["name"] = "Name is required."
	}

	price, err := strconv.ParseFloat(r.FormValue("base_price"), 64)
	if err != nil {
		errors["base_price"] = "Invalid price format."
	}

	discount := 0.0
	if v := r.FormValue("discount_pct"); v != "" {
		if discount, err = strconv.ParseFloat(v, 64); err != nil {
			errors["discount_pct"] = "Invalid discount format."
		}
	}

	stock := 0
	if v := r.FormValue("stock"); v != "" {
		if stock, err = strconv.Atoi(v); err != nil || stock < 0 {
			errors["stock"] = "Invalid stock quantity."
		}
	}

	if len(errors) > 0 {
		return nil, errors
	}

	item, err := catalog.New(0, name, price, discount)
	if err != nil {
		errors["pricing"] = err.Error()
		return nil, errors
	}
	item.Description = r.FormValue("description")
	item.Stock = stock
	if catID, err := strconv.Atoi(r.FormValue("category_id")); err == nil {
		item.Category.ID = catID
	}
	return item, nil
}

func (h *AdminHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	s, _ := h.SessionStore.Get(r, adminSessionName)
	defer s.Save(r, w)

	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10MB
		s.AddFlash(FlashMessage{Type: "error", Message: "File too large. Max 10MB."})
		http.Redirect(w, r, "/admin/items/new", http.StatusSeeOther)
		return
	}

	item, errors := parseItemForm(r)
	if errors != nil {
		for _, msg := range errors {
			s.AddFlash(FlashMessage{Type: "error", Message: msg})
		}
		http.Redirect(w, r, "/admin/items/new", http.StatusSeeOther)
		return
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		imageURL, err := h.saveUpload(file, header.Filename)
		if err != nil {
			s.AddFlash(FlashMessage{Type: "error", Message: err.Error()})
			http.Redirect(w, r, "/admin/items/new", http.StatusSeeOther)
			return
		}
		item.ImageURL = imageURL
	}

	if err := h.Store.CreateItem(item); err != nil {
		s.AddFlash(FlashMessage{Type: "error", Message: "Error saving item to database."})
		http.Redirect(w, r, "/admin/items/new", http.StatusSeeOther)
		return
	}

	s.AddFlash(FlashMessage{Type: "success", Message: "Item added successfully!"})
	http.Redirect(w, r, "/admin/items", http.StatusSeeOther)
}

func (h *AdminHandler) EditItemForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	item, err := h.Store.GetItemByID(id)
	if err != nil {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	cats, err := h.Store.ListCategories()
	if err != nil {
		http.Error(w, "Error fetching categories", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("admin_edit_item.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	s, _ := h.SessionStore.Get(r, adminSessionName)
	data := map[string]interface{}{
		"CsrfField":  csrf.TemplateField(r),
		"Flashes":    GetFlash(s),
		"Item":       item,
		"Categories": cats,
	}
	s.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	s, _ := h.SessionStore.Get(r, adminSessionName)
	defer s.Save(r, w)

	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10MB
		s.AddFlash(FlashMessage{Type: "error", Message: "File too large."})
		http.Redirect(w, r, "/admin/items", http.StatusSeeOther)
		return
	}

	id, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	item, errors := parseItemForm(r)
	if errors != nil {
		for _, msg := range errors {
			s.AddFlash(FlashMessage{Type: "error", Message: msg})
		}
		http.Redirect(w, r, fmt.Sprintf("/admin/items/edit?id=%d", id), http.StatusSeeOther)
		return
	}
	item.ID = id

	if err := h.Store.UpdateItem(item); err != nil {
		s.AddFlash(FlashMessage{Type: "error", Message: "Error updating item."})
		http.Redirect(w, r, fmt.Sprintf("/admin/items/edit?id=%d", id), http.StatusSeeOther)
		return
	}

	// Optional image update
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		imageURL, err := h.saveUpload(file, header.Filename)
		if err != nil {
			slog.Error("Failed to process uploaded image", "id", id, "error", err)
			s.AddFlash(FlashMessage{Type: "error", Message: err.Error()})
		} else if err := h.Store.UpdateItemImage(id, imageURL); err != nil {
			slog.Error("Failed to update item image", "id", id, "error", err)
			s.AddFlash(FlashMessage{Type: "error", Message: "Error updating item image."})
		}
	}

	s.AddFlash(FlashMessage{Type: "success", Message: "Item updated successfully!"})
	http.Redirect(w, r, "/admin/items", http.StatusSeeOther)
}

func (h *AdminHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	s, _ := h.SessionStore.Get(r, adminSessionName)
	defer s.Save(r, w)

	id, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		s.AddFlash(FlashMessage{Type: "error", Message: "Invalid ID."})
		http.Redirect(w, r, "/admin/items", http.StatusSeeOther)
		return
	}

	if err := h.Store.DeleteItem(id); err != nil {
		s.AddFlash(FlashMessage{Type: "error", Message: "Error deleting item."})
		http.Redirect(w, r, "/admin/items", http.StatusSeeOther)
		return
	}

	s.AddFlash(FlashMessage{Type: "success", Message: "Item deleted successfully!"})
	http.Redirect(w, r, "/admin/items", http.StatusSeeOther)
}

// saveUpload decodes, resizes (max width 800px) and stores an uploaded
// image, returning its public URL.
func (h *AdminHandler) saveUpload(file io.Reader, filename string) (string, error) {
	var img image.Image
	var err error
	switch filepath.Ext(filename) {
	case ".png":
		img, err = png.Decode(file)
	case ".jpeg", ".jpg":
		img, err = jpeg.Decode(file)
	default:
		return "", fmt.Errorf("unsupported image format, only PNG, JPG, JPEG are allowed")
	}
	if err != nil {
		return "", fmt.Errorf("failed to decode image")
	}

	resized := resize.Resize(800, 0, img, resize.Lanczos3)

	name := fmt.Sprintf("%s.jpg", uuid.New().String())
	out, err := os.Create(filepath.Join("static/uploads", name))
	if err != nil {
		return "", fmt.Errorf("error saving image file")
	}
	defer out.Close()

	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("error encoding image")
	}
	return "/static/uploads/" + name, nil
}
