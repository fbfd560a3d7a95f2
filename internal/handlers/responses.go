package handlers

import (
	"vrmhub/internal/models"
)

// Response structs are mapped field-by-field from the persistence entities,
// so schema changes cannot silently leak into the wire contract.

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AnimationResponse struct {
	ID       uint   `json:"id"`
	AnimName string `json:"anim_name"`
	VRMAPath string `json:"vrma_path"`
}

type ModelResponse struct {
	ID         uint                `json:"id"`
	Name       string              `json:"name"`
	VRMPath    string              `json:"vrm_path"`
	Animations []AnimationResponse `json:"animations"`
}

type UserResponse struct {
	ID       uint            `json:"id"`
	Email    string          `json:"email"`
	IsActive bool            `json:"is_active"`
	Models   []ModelResponse `json:"vrm_models"`
}

type BackgroundResponse struct {
	ID       uint   `json:"id"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// The upload response names animation fields differently from the list
// endpoints ("name"/"path" rather than "anim_name"/"vrma_path"). That
// asymmetry is part of the existing frontend contract.

type UploadedModel struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	VRMPath string `json:"vrm_path"`
}

type UploadedAnimation struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

type UploadResponse struct {
	Model      UploadedModel       `json:"model"`
	Animations []UploadedAnimation `json:"animations"`
}

func toAnimationResponse(a models.VRMAnimation) AnimationResponse {
	return AnimationResponse{
		ID:       a.ID,
		AnimName: a.AnimName,
		VRMAPath: a.VRMAPath,
	}
}

func toModelResponse(m models.VRMModel) ModelResponse {
	animations := make([]AnimationResponse, 0, len(m.Animations))
	for _, a := range m.Animations {
		animations = append(animations, toAnimationResponse(a))
	}
	return ModelResponse{
		ID:         m.ID,
		Name:       m.Name,
		VRMPath:    m.VRMPath,
		Animations: animations,
	}
}

func toModelResponses(list []models.VRMModel) []ModelResponse {
	out := make([]ModelResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toModelResponse(m))
	}
	return out
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
		Models:   toModelResponses(u.Models),
	}
}

func toBackgroundResponse(b models.Background) BackgroundResponse {
	return BackgroundResponse{
		ID:       b.ID,
		Filename: b.Filename,
		Path:     b.Path,
	}
}

func toBackgroundResponses(list []models.Background) []BackgroundResponse {
	out := make([]BackgroundResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBackgroundResponse(b))
	}
	return out
}
