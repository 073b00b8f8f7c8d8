package contracts

import (
	domainChallenge "Piggyvault/internal/domain/challenge"
)

type ChallengeStartRequest struct {
	TemplateId string `json:"template_id" binding:"required,max=50"`
}

type ChallengeResponse struct {
	Challenge *domainChallenge.Challenge `json:"challenge"`
}

type ChallengeListResponse struct {
	Challenges []*domainChallenge.Challenge `json:"challenges"`
	Total      int                          `json:"total"`
}

type ChallengeTemplateListResponse struct {
	Templates []domainChallenge.Template `json:"templates"`
}
