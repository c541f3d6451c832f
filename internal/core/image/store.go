// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package image

import "context"

type Repository interface {
	ListImages(context context.Context) ([]*Image, error)
	GetImage(context context.Context, id int) (*Image, error)
	CreateImage(context context.Context, image *Image) error
	DeleteImage(context context.Context, id int) error
}
