package server

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repodeck/pkg/domain/interfaces"
	"github.com/m-mizutani/repodeck/pkg/domain/model"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
	"github.com/russross/blackfriday/v2"
)

type listResponse struct {
	Repos     []*model.Repository `json:"repos"`
	Languages []string            `json:"languages"`
}

// listRepositories responds the aggregated listing. `language` query narrows repositories but languages are always the full index.
func listRepositories(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := uc.AggregateRepositories(r.Context())
		if err != nil {
			writeError(w, r, "failed to aggregate repositories", err)
			return
		}

		writeJSON(w, http.StatusOK, listResponse{
			Repos:     model.FilterByLanguage(result.Repositories, r.URL.Query().Get("language")),
			Languages: result.Languages,
		})
	}
}

type detailRequest struct {
	CommitURL string `json:"commit_url"`
	FullName  string `json:"full_name"`
}

type detailResponse struct {
	Name            types.FullName   `json:"name"`
	Commit          model.CommitInfo `json:"commit"`
	CommitAvailable bool             `json:"commit_available"`
	Readme          string           `json:"readme"`
	ReadmeHTML      string           `json:"readme_html,omitempty"`
}

func parseDetailRequest(r *http.Request) (*detailRequest, error) {
	var req detailRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid JSON body", goerr.V("cause", err.Error()))
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid form body", goerr.V("cause", err.Error()))
		}
		req.CommitURL = r.PostForm.Get("commit_url")
		req.FullName = r.PostForm.Get("full_name")
	}

	if req.FullName == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "full_name is required")
	}

	return &req, nil
}

// resolveDetail takes full_name and commit_url (the branch lookup URL) as selected in the listing
func resolveDetail(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseDetailRequest(r)
		if err != nil {
			writeError(w, r, "invalid detail request", err)
			return
		}

		detail, err := uc.ResolveDetail(r.Context(), types.FullName(req.FullName), req.CommitURL)
		if err != nil {
			writeError(w, r, "failed to resolve repository detail", err)
			return
		}

		writeJSON(w, http.StatusOK, toDetailResponse(r, detail))
	}
}

func showRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fullName := types.FullName(chi.URLParam(r, "owner") + "/" + chi.URLParam(r, "name"))

		detail, err := uc.ResolveRepository(r.Context(), fullName)
		if err != nil {
			writeError(w, r, "failed to resolve repository", err)
			return
		}

		writeJSON(w, http.StatusOK, toDetailResponse(r, detail))
	}
}

// toDetailResponse renders README markdown as HTML when `format=html` is requested. The HTML is not sanitized.
func toDetailResponse(r *http.Request, detail *model.RepositoryDetail) detailResponse {
	resp := detailResponse{
		Name:            detail.FullName,
		Commit:          detail.Commit,
		CommitAvailable: detail.Commit.Available(),
		Readme:          detail.Readme,
	}

	if r.URL.Query().Get("format") == "html" {
		resp.ReadmeHTML = string(blackfriday.Run([]byte(detail.Readme)))
	}

	return resp
}
