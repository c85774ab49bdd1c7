// Package media resolves stored photo references into CDN delivery URLs.
// The catalog stores either full URLs (external images) or bare public ids of
// assets uploaded to the image CDN; the resolver normalizes both into a URL
// the admin UI can load directly.
package media

import (
	"fmt"
	"strings"
)

// transformation is the fixed delivery transformation applied to every CDN
// asset: dashboard thumbnail size, center crop, automatic quality and format.
const transformation = "w_400,h_300,c_fill,q_auto,f_auto"

// defaultPublicID is served when a record carries no photo reference at all.
const defaultPublicID = "placeholder"

// CloudinaryResolver builds delivery URLs for assets hosted on Cloudinary.
// References that are already absolute URLs pass through untouched.
type CloudinaryResolver struct {
	cloudName string
	folder    string
}

// NewCloudinaryResolver creates a resolver for the given cloud and asset folder.
func NewCloudinaryResolver(cloudName, folder string) CloudinaryResolver {
	return CloudinaryResolver{
		cloudName: cloudName,
		folder:    folder,
	}
}

// Resolve turns a stored photo reference into a loadable URL.
// Absolute http(s) URLs pass through unchanged; empty references resolve to
// the placeholder asset; anything else is treated as a public id inside the
// configured folder.
func (r CloudinaryResolver) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	if ref == "" {
		ref = defaultPublicID
	}

	return fmt.Sprintf(
		"https://res.cloudinary.com/%s/image/upload/%s/%s/%s",
		r.cloudName,
		transformation,
		r.folder,
		ref,
	)
}
