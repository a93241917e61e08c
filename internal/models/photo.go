package models

import "time"

// Photo folders used by the console
const (
	PhotoFolderCriancas     = "criancas"
	PhotoFolderResponsaveis = "responsaveis"
	PhotoFolderTios         = "tios"
	PhotoFolderUsuarios     = "usuarios"
	PhotoFolderCheckIns     = "checkins"
	PhotoFolderCheckOuts    = "checkouts"
)

// ValidPhotoFolder reports whether folder is one the console writes to
func ValidPhotoFolder(folder string) bool {
	switch folder {
	case PhotoFolderCriancas, PhotoFolderResponsaveis, PhotoFolderTios,
		PhotoFolderUsuarios, PhotoFolderCheckIns, PhotoFolderCheckOuts:
		return true
	}
	return false
}

// Photo is a stored image
type Photo struct {
	ID          string    `bson:"_id" json:"id"`
	Path        string    `bson:"path" json:"path"`
	ContentType string    `bson:"contentType" json:"contentType"`
	Size        int64     `bson:"size" json:"size"`
	SHA256      string    `bson:"sha256" json:"sha256"`
	URL         string    `bson:"url" json:"url"`
	UploadedAt  time.Time `bson:"uploadedAt" json:"uploadedAt"`
}
