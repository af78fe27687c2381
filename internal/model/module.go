package model

// Module and Topic are the organizational hierarchy above questions. The
// importer only get-or-creates the default "Python Fundamentals" pair; the rest
// of the hierarchy is managed elsewhere.
type Module struct {
	BaseModel
	Name        string  `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Order       int     `gorm:"column:display_order;default:0" json:"order"`
	Topics      []Topic `gorm:"foreignKey:ModuleID" json:"topics,omitempty"`
}

func (Module) TableName() string {
	return "modules"
}

type Topic struct {
	BaseModel
	ModuleID    uint       `gorm:"not null;index" json:"moduleId"`
	Name        string     `gorm:"size:100;not null;index" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Order       int        `gorm:"column:display_order;default:0" json:"order"`
	Questions   []Question `gorm:"foreignKey:TopicID" json:"questions,omitempty"`
}

func (Topic) TableName() string {
	return "topics"
}
