package users

// ProfileUpdate is a partial update of a Profile. Nil fields are left untouched.
type ProfileUpdate struct {
	Nickname  *string `json:"nickname" binding:"omitempty,max=24"`
	Gender    *string `json:"gender" binding:"omitempty,max=12"`
	Location  *string `json:"location" binding:"omitempty,max=24"`
	Age       *string `json:"age" binding:"omitempty,max=24"`
	Foot      *string `json:"foot" binding:"omitempty,max=12"`
	Level     *int    `json:"level" binding:"omitempty,min=0"`
	Positions *[]int  `json:"positions"`
}

func (u ProfileUpdate) IsEmpty() bool {
	return u.Nickname == nil && u.Gender == nil && u.Location == nil &&
		u.Age == nil && u.Foot == nil && u.Level == nil && u.Positions == nil
}

// Apply copies the set fields onto p.
func (u ProfileUpdate) Apply(p *Profile) {
	if u.Nickname != nil {
		p.Nickname = u.Nickname
	}
	if u.Gender != nil {
		p.Gender = u.Gender
	}
	if u.Location != nil {
		p.Location = u.Location
	}
	if u.Age != nil {
		p.Age = u.Age
	}
	if u.Foot != nil {
		p.Foot = u.Foot
	}
	if u.Level != nil {
		p.Level = u.Level
	}
	if u.Positions != nil {
		p.Positions = append([]int(nil), (*u.Positions)...)
	}
}
