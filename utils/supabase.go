package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	storage "github.com/supabase-community/storage-go"
)

const imageBucket = "event-images"

// UploadToSupabase sube una imagen (hero, galería) al bucket público y
// devuelve su URL.
func UploadToSupabase(fh *multipart.FileHeader, fileID string, folder string) (string, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")

	storageClient := storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	ext := filepath.Ext(fh.Filename)

	objectPath := fmt.Sprintf("%s%s", fileID, ext)
	if folder != "" {
		objectPath = fmt.Sprintf("%s/%s%s", folder, fileID, ext)
	}

	upsert := true
	options := storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}

	if _, err := storageClient.UploadFile(imageBucket, objectPath, f, options); err != nil {
		return "", err
	}

	publicURL := storageClient.GetPublicUrl(imageBucket, objectPath)
	return publicURL.SignedURL, nil
}
