package users

import "sportsclub-app/internal/domain/users"

type MeResponse struct {
	ID      uint       `json:"id"`
	Email   string     `json:"email"`
	Profile ProfileDTO `json:"profile"`
	Sns     []SnsDTO   `json:"sns"`
}

type ProfileDTO struct {
	Nickname  *string `json:"nickname"`
	Gender    *string `json:"gender"`
	Location  *string `json:"location"`
	Age       *string `json:"age"`
	Foot      *string `json:"foot"`
	Level     *int    `json:"level"`
	Positions []int   `json:"positions"`
	Img       *string `json:"img"`
}

type SnsDTO struct {
	Provider string `json:"provider"`
}

// BuildMeResponse expects u.Profile to be loaded.
func BuildMeResponse(u *users.User) MeResponse {
	p := u.Profile
	positions := p.Positions
	if positions == nil {
		positions = []int{}
	}

	sns := make([]SnsDTO, 0, len(u.Sns))
	for _, s := range u.Sns {
		sns = append(sns, SnsDTO{Provider: s.Provider})
	}

	return MeResponse{
		ID:    u.ID,
		Email: u.Email,
		Profile: ProfileDTO{
			Nickname:  p.Nickname,
			Gender:    p.Gender,
			Location:  p.Location,
			Age:       p.Age,
			Foot:      p.Foot,
			Level:     p.Level,
			Positions: positions,
			Img:       p.Img,
		},
		Sns: sns,
	}
}
