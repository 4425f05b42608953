package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Prefix 商品图片统一放在 products/ 下
const Prefix = "products"

// MimeTypeMap 允许上传的图片类型 -> 扩展名
var MimeTypeMap = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
}

var (
	ErrEmptyObject     = errors.New("empty object")
	ErrInvalidMimeType = errors.New("invalid mime type")
)

// Object 待上传对象；Hint 用来生成可读文件名（如型号）
type Object struct {
	Data []byte
	Hint string
}

// Local 写本地磁盘，对外暴露 BaseURL + /uploads/...
type Local struct {
	Dir     string
	BaseURL string
}

// Upload 按内容嗅探类型，不信任客户端声明的 Content-Type
func (l *Local) Upload(ctx context.Context, obj Object) (string, error) {
	if len(obj.Data) == 0 {
		return "", ErrEmptyObject
	}
	mt := mimetype.Detect(obj.Data).String()
	if i := strings.IndexByte(mt, ';'); i > 0 {
		mt = mt[:i]
	}
	ext, ok := MimeTypeMap[mt]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidMimeType, mt)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + "." + ext
	if s := slug.Make(obj.Hint); s != "" {
		name = s + "-" + name
	}
	dir := filepath.Join(l.Dir, Prefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, name), obj.Data, 0o644); err != nil {
		return "", err
	}
	return strings.TrimRight(l.BaseURL, "/") + "/uploads/" + Prefix + "/" + name, nil
}
