package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/domain/types"
	"github.com/nexboard/nexboard/pkg/usecase"
	"github.com/nexboard/nexboard/pkg/utils/safe"
)

func projectID(r *http.Request) types.ProjectID {
	return types.ProjectID(chi.URLParam(r, "projectID"))
}

type createProjectRequest struct {
	Name     string             `json:"name"`
	Template types.TemplateType `json:"template"`
}

func createProjectHandler(uc *usecase.ProjectUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer safe.Close(r.Context(), r.Body)

		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		project, err := uc.CreateProject(r.Context(), req.Name, req.Template)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, project)
	}
}

func getProjectHandler(uc *usecase.ProjectUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := uc.GetProject(r.Context(), projectID(r))
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, project)
	}
}

func getMetadataHandler(uc *usecase.MetadataUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := uc.GetMetadata(r.Context(), projectID(r))
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, view)
	}
}

func patchMetadataHandler(uc *usecase.MetadataUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer safe.Close(r.Context(), r.Body)

		var patch model.MetadataPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		metadata, err := uc.PatchMetadata(r.Context(), projectID(r), &patch)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, metadata)
	}
}

func replaceMetadataHandler(uc *usecase.MetadataUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer safe.Close(r.Context(), r.Body)

		var payload model.MetadataPatch
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		metadata, err := uc.ReplaceMetadata(r.Context(), projectID(r), &payload)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, metadata)
	}
}

func getMilestonesHandler(uc *usecase.MetadataUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := uc.GetMilestones(r.Context(), projectID(r))
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, view)
	}
}

func replaceMilestonesHandler(uc *usecase.MetadataUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer safe.Close(r.Context(), r.Body)

		var milestones []model.Milestone
		if err := json.NewDecoder(r.Body).Decode(&milestones); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		view, err := uc.ReplaceMilestones(r.Context(), projectID(r), milestones)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, view)
	}
}

func getCustomFieldsHandler(uc *usecase.MetadataUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := uc.GetCustomFields(r.Context(), projectID(r))
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, view)
	}
}

type customFieldsResponse struct {
	CustomFields []model.CustomField `json:"customFields"`
}

func replaceCustomFieldsHandler(uc *usecase.MetadataUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer safe.Close(r.Context(), r.Body)

		var inputs []model.CustomFieldInput
		if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		fields, err := uc.ReplaceCustomFields(r.Context(), projectID(r), inputs)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, customFieldsResponse{CustomFields: fields})
	}
}

func patchFieldValuesHandler(uc *usecase.MetadataUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer safe.Close(r.Context(), r.Body)

		var values map[string]any
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		fields, err := uc.PatchFieldValues(r.Context(), projectID(r), values)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, customFieldsResponse{CustomFields: fields})
	}
}

func listTemplatesHandler(uc *usecase.TemplateUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := types.TemplateType(r.URL.Query().Get("id"))

		view, err := uc.ListTemplates(r.Context(), filter)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, view)
	}
}
