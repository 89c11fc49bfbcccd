// file: internals/helpers/storage/storage.go
//
// Court avatar storage on Supabase Storage. Images are normalized before
// upload: EXIF-aware decode, downscale to the avatar bounding box, re-encode
// as WebP. The record only ever stores the resulting public URL.
package storage

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

const (
	avatarBucket  = "court-avatars"
	maxUploadSize = 2 * 1024 * 1024 // matches the 2MB guard in the dashboard
	avatarMaxW    = 800
	avatarMaxH    = 800
	webpQuality   = 80
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

func supabaseURL() string { return strings.TrimRight(os.Getenv("SUPABASE_PROJECT_URL"), "/") }
func supabaseKey() string { return os.Getenv("SUPABASE_SERVICE_ROLE_KEY") }

// UploadCourtAvatar stores a re-encoded avatar under <userID>/<ts>.webp and
// returns the public URL.
func UploadCourtAvatar(userID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("no file provided")
	}
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file too large (max %dKB)", maxUploadSize/1024)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	encoded, err := normalizeAvatar(raw)
	if err != nil {
		return "", err
	}

	objectPath := fmt.Sprintf("%s/%d.webp", userID.String(), time.Now().UnixNano())
	if err := putObject(objectPath, "image/webp", encoded); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		supabaseURL(), avatarBucket, objectPath), nil
}

// DeleteCourtAvatarByURL removes the object referenced by a public URL.
// Best-effort: an unknown URL shape is reported, a storage miss is not.
func DeleteCourtAvatarByURL(publicURL string) error {
	parts := strings.SplitN(publicURL, "/"+avatarBucket+"/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return fmt.Errorf("not a %s URL", avatarBucket)
	}
	objectPath := parts[1]

	req, err := http.NewRequest(http.MethodDelete,
		fmt.Sprintf("%s/storage/v1/object/%s/%s", supabaseURL(), avatarBucket, escapeObjectPath(objectPath)), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey())

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage delete: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("storage delete: status %d", resp.StatusCode)
	}
	return nil
}

// normalizeAvatar decodes (EXIF orientation applied), downscales when the
// image exceeds the avatar box, and encodes to WebP.
func normalizeAvatar(raw []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > avatarMaxW || h > avatarMaxH {
		scale := float64(avatarMaxW) / float64(w)
		if s := float64(avatarMaxH) / float64(h); s < scale {
			scale = s
		}
		nw, nh := int(float64(w)*scale), int(float64(h)*scale)
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// escapeObjectPath escapes each segment on its own so the "/" separators
// survive and the endpoint path matches the public URL layout.
func escapeObjectPath(objectPath string) string {
	segments := strings.Split(objectPath, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

func putObject(objectPath, contentType string, body []byte) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", supabaseURL(), avatarBucket, escapeObjectPath(objectPath))
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey())
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "3600")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage upload: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("storage upload: status %d", resp.StatusCode)
	}
	return nil
}
