package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/styleloom/outfitter/internal/core/domain"
	"github.com/styleloom/outfitter/internal/core/port"
)

// POST /v1/wishlist/folders JSON {"name" string} (201 Created, 400)
// GET /v1/wishlist/folders (200 OK)
// POST /v1/wishlist/folders/{folderID}/products JSON {"product"} (201, 404, 409)
// DELETE /v1/wishlist/folders/{folderID}/products/{productID} (204, 404)
// DELETE /v1/wishlist/folders/{folderID} (204, 404)

type WishlistHandler struct {
	manager port.WishlistManager
}

func RegisterWishlist(mux *http.ServeMux, manager port.WishlistManager) {
	h := WishlistHandler{manager}
	mux.HandleFunc("POST /v1/wishlist/folders", h.PostFolder)
	mux.HandleFunc("GET /v1/wishlist/folders", h.GetFolders)
	mux.HandleFunc("POST /v1/wishlist/folders/{folderID}/products", h.PostProduct)
	mux.HandleFunc(
		"DELETE /v1/wishlist/folders/{folderID}/products/{productID}",
		h.DeleteProduct,
	)
	mux.HandleFunc("DELETE /v1/wishlist/folders/{folderID}", h.DeleteFolder)
}

func (h WishlistHandler) PostFolder(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.PostFolder"
	log := slog.With("op", op)

	var req CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	folder, err := h.manager.CreateFolder(r.Context(), req.Name)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid folder name")
		log.Warn("failed to create folder", "err", err)
		return
	}

	writeJSON(w, http.StatusCreated, FolderResponse{
		Success: true,
		Folder:  fromDomainFolder(folder),
	})
	log.Info("created", "folderID", folder.ID)
}

func (h WishlistHandler) GetFolders(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.GetFolders"
	log := slog.With("op", op)

	folders, err := h.manager.Folders(r.Context())
	if err != nil {
		writeFailure(w, http.StatusServiceUnavailable, "failed to list folders")
		log.Error("failed to list folders", "err", err)
		return
	}

	out := make([]Folder, len(folders))
	for i, f := range folders {
		out[i] = fromDomainFolder(f)
	}
	writeJSON(w, http.StatusOK, FoldersResponse{Success: true, Folders: out})
}

func (h WishlistHandler) PostProduct(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.PostProduct"
	log := slog.With("op", op)

	folderID := r.PathValue("folderID")

	var req AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err := h.manager.AddToFolder(
		r.Context(), folderID, toDomainProduct(req.Product),
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidProduct):
			writeFailure(w, http.StatusBadRequest, "invalid product")
		case errors.Is(err, domain.ErrFolderNotFound):
			writeFailure(w, http.StatusNotFound, "folder not found")
		case errors.Is(err, domain.ErrDuplicateProduct):
			writeFailure(w, http.StatusConflict, "product is already in folder")
		default:
			writeFailure(w, http.StatusServiceUnavailable, "failed to add product")
			log.Error("failed to add product", "err", err)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
	log.Info("added", "folderID", folderID, "productID", req.Product.ID)
}

func (h WishlistHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.DeleteProduct"
	log := slog.With("op", op)

	folderID := r.PathValue("folderID")
	productID := r.PathValue("productID")

	err := h.manager.RemoveFromFolder(r.Context(), folderID, productID)
	if err != nil {
		if errors.Is(err, domain.ErrFolderNotFound) ||
			errors.Is(err, domain.ErrNotFound) {
			writeFailure(w, http.StatusNotFound, "not found")
			return
		}
		writeFailure(w, http.StatusServiceUnavailable, "failed to remove product")
		log.Error("failed to remove product", "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info("removed", "folderID", folderID, "productID", productID)
}

func (h WishlistHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.DeleteFolder"
	log := slog.With("op", op)

	folderID := r.PathValue("folderID")

	if err := h.manager.DeleteFolder(r.Context(), folderID); err != nil {
		if errors.Is(err, domain.ErrFolderNotFound) {
			writeFailure(w, http.StatusNotFound, "folder not found")
			return
		}
		writeFailure(w, http.StatusServiceUnavailable, "failed to delete folder")
		log.Error("failed to delete folder", "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info("deleted", "folderID", folderID)
}
