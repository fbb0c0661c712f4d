package model

// Read-only PSGC reference hierarchy:
// region → province → municipality → barangay, linked by parent codes.

type RegionModel struct {
	RegCode string `gorm:"column:reg_code;primaryKey;size:10" json:"reg_code"`
	Name    string `gorm:"column:name;size:150;not null" json:"name"`
}

func (RegionModel) TableName() string { return "psgc_regions" }

type ProvinceModel struct {
	ProvCode string `gorm:"column:prov_code;primaryKey;size:10" json:"prov_code"`
	RegCode  string `gorm:"column:reg_code;size:10;not null;index" json:"reg_code"`
	Name     string `gorm:"column:name;size:150;not null" json:"name"`
}

func (ProvinceModel) TableName() string { return "psgc_provinces" }

type MunicipalityModel struct {
	MunCode  string `gorm:"column:mun_code;primaryKey;size:10" json:"mun_code"`
	ProvCode string `gorm:"column:prov_code;size:10;not null;index" json:"prov_code"`
	Name     string `gorm:"column:name;size:150;not null" json:"name"`
	Zipcode  string `gorm:"column:zipcode;size:10" json:"zipcode"`
}

func (MunicipalityModel) TableName() string { return "psgc_municipalities" }

type BarangayModel struct {
	BrgyCode string `gorm:"column:brgy_code;primaryKey;size:12" json:"brgy_code"`
	MunCode  string `gorm:"column:mun_code;size:10;not null;index" json:"mun_code"`
	Name     string `gorm:"column:name;size:150;not null" json:"name"`
}

func (BarangayModel) TableName() string { return "psgc_barangays" }
