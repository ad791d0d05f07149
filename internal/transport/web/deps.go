package web

import "github.com/Kenni13/VideoHosting/internal/domain"

type Deps struct {
	Storage domain.MediaStorage
	Meta    domain.MetadataRepo
	Cache   domain.Cache
}
