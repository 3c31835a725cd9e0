package oss

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"math"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const maxUploadSize = int64(5 * 1024 * 1024)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

// =============================
// WebP re-encode options
// =============================

type WebPOptions struct {
	MaxW    int
	MaxH    int
	Quality float32
	ThumbW  int // 0 disables the thumbnail
}

func DefaultWebPOptions() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
		ThumbW:  envInt("IMAGE_THUMB_W", 320),
	}
}

var ErrUnsupportedFormat = fmt.Errorf("unsupported image format")

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, ErrUnsupportedFormat
}

// downscaleIfNeeded keeps aspect; CatmullRom for quality.
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// ConvertToWebP reads, decodes, bounds and re-encodes an uploaded image.
func ConvertToWebP(file multipart.File, filename string, opt WebPOptions) ([]byte, error) {
	all, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, opt.MaxW, opt.MaxH)

	q := opt.Quality
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Thumbnail produces a fixed-width preview from an already-decoded webp
// payload.
func Thumbnail(webpData []byte, width int) ([]byte, error) {
	img, err := webp.Decode(bytes.NewReader(webpData))
	if err != nil {
		return nil, err
	}
	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, thumb, &webp.Options{Quality: 70}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// =============================
// OSS service
// =============================

type OSSService struct {
	Client     *alioss.Client
	Bucket     *alioss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := alioss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(alioss.ServiceError); ok && se.StatusCode == 403 {
			log.Printf("[WARN] oss: skipping location check (bucket=%s)", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[INFO] oss: bucket %s location %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// UploadImage re-encodes the upload to webp, stores it with an immutable
// cache policy, and stores a thumbnail next to it when enabled. Returns
// the public URLs of both objects (thumb empty when disabled).
func (s *OSSService) UploadImage(ctx context.Context, fh *multipart.FileHeader, opt WebPOptions) (string, string, error) {
	if fh == nil {
		return "", "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return "", "", fmt.Errorf("file too large (max %d bytes)", maxUploadSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	webpData, err := ConvertToWebP(src, fh.Filename, opt)
	if err != nil {
		return "", "", err
	}

	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	key := s.buildObjectKey(base + ".webp")

	if err := s.UploadStream(ctx, key, bytes.NewReader(webpData), "image/webp"); err != nil {
		return "", "", err
	}

	thumbURL := ""
	if opt.ThumbW > 0 {
		thumbData, err := Thumbnail(webpData, opt.ThumbW)
		if err != nil {
			return "", "", fmt.Errorf("thumbnail: %w", err)
		}
		thumbKey := strings.TrimSuffix(key, ".webp") + "_thumb.webp"
		if err := s.UploadStream(ctx, thumbKey, bytes.NewReader(thumbData), "image/webp"); err != nil {
			return "", "", err
		}
		thumbURL = s.PublicURL(thumbKey)
	}

	return s.PublicURL(key), thumbURL, nil
}

func (s *OSSService) UploadStream(ctx context.Context, key string, r io.Reader, contentType string) error {
	opts := []alioss.Option{
		alioss.WithContext(ctx),
		alioss.ContentType(contentType),
		alioss.ContentDisposition("inline"),
		alioss.CacheControl("public, max-age=31536000, immutable"),
	}
	return s.Bucket.PutObject(key, r, opts...)
}

// UploadFile streams a local file to the bucket, for the backup scheduler.
func (s *OSSService) UploadFile(ctx context.Context, key, localPath, contentType string) error {
	opts := []alioss.Option{
		alioss.WithContext(ctx),
		alioss.ContentType(contentType),
	}
	return s.Bucket.PutObjectFromFile(key, localPath, opts...)
}

// ListImages pages through stored objects, marker-style: pass the marker
// from the previous answer to continue.
func (s *OSSService) ListImages(ctx context.Context, marker string, max int) ([]string, string, error) {
	if max <= 0 || max > 100 {
		max = 30
	}
	prefix := s.Prefix
	if prefix != "" {
		prefix += "/"
	}
	res, err := s.Bucket.ListObjects(
		alioss.WithContext(ctx),
		alioss.Prefix(prefix),
		alioss.Marker(marker),
		alioss.MaxKeys(max),
	)
	if err != nil {
		return nil, "", err
	}
	urls := make([]string, 0, len(res.Objects))
	for _, obj := range res.Objects {
		urls = append(urls, s.PublicURL(obj.Key))
	}
	return urls, res.NextMarker, nil
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, alioss.WithContext(ctx))
}

// DeleteByPublicURL resolves the object key back out of a public URL.
func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := s.keyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.DeleteObject(ctx, key)
}

func (s *OSSService) PublicURL(key string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, host, key)
}

func (s *OSSService) keyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", err
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("no object key in URL: %s", publicURL)
	}
	return key, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeChars.ReplaceAllString(filename, "_")
}

func (s *OSSService) buildObjectKey(filename string) string {
	stamp := time.Now().Format("20060102")
	name := fmt.Sprintf("%s-%s-%s", stamp, uuid.NewString(), sanitizeFilename(filename))
	if s.Prefix != "" {
		return s.Prefix + "/" + name
	}
	return name
}
