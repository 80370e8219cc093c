// file: mappers/sponsorship_mapper.go
package mappers

import (
	"SponsorPortal/dto"
	"SponsorPortal/models"
)

func MapSubmitReqToModel(req dto.SubmitSponsorshipReq) models.SponsorshipRequest {
	return models.SponsorshipRequest{
		Name:          req.Name,
		Email:         req.Email,
		Company:       req.Company,
		Website:       req.Website,
		InterestLevel: models.InterestLevel(req.InterestLevel),
		Message:       req.Message,
	}
}

func MapModelToAdminItem(req models.SponsorshipRequest) dto.AdminSponsorshipItemResp {
	return dto.AdminSponsorshipItemResp{
		ID:            req.ID,
		Name:          req.Name,
		Email:         req.Email,
		Company:       req.Company,
		Website:       req.Website,
		InterestLevel: string(req.InterestLevel),
		Message:       req.Message,
		Status:        string(req.Status),
		CreatedAt:     req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func MapModelsToAdminItems(reqs []models.SponsorshipRequest) []dto.AdminSponsorshipItemResp {
	items := make([]dto.AdminSponsorshipItemResp, 0, len(reqs))
	for _, req := range reqs {
		items = append(items, MapModelToAdminItem(req))
	}
	return items
}
