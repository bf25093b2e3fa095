package services

import (
	"context"

	"estateFront/internal/backend"
	"estateFront/internal/models"
)

// metadataOverheadBytes is the fixed share of the combined progress bar
// reserved for the final metadata request, so the bar does not sit at 100%
// while the lead itself is still posting.
const metadataOverheadBytes = 16 * 1024

// UploadService blends image, video and metadata progress into one 0-100
// figure, weighted by byte share. Images travel as a single multipart
// request, the video as another; there is no parallelism control.
type UploadService struct {
	Backend *backend.Client
}

type UploadResult struct {
	ImageURLs []string
	VideoURL  string
}

// UploadMedia runs the uploads and reports combined progress. The reported
// percentage is monotonic and stops short of 100; Finish credits the
// metadata share once the follow-up request is done.
func (s *UploadService) UploadMedia(ctx context.Context, images []models.MediaFile, video *models.MediaFile, onProgress func(percent int)) (UploadResult, *ProgressTracker, error) {
	tracker := newProgressTracker(images, video, onProgress)
	var result UploadResult

	if len(images) > 0 {
		urls, err := s.Backend.UploadImages(ctx, images, func(fraction float64) {
			tracker.phase(tracker.imageBytes, 0, fraction)
		})
		if err != nil {
			return UploadResult{}, nil, err
		}
		result.ImageURLs = urls
	}

	if video != nil {
		url, err := s.Backend.UploadVideo(ctx, *video, func(fraction float64) {
			tracker.phase(tracker.videoBytes, tracker.imageBytes, fraction)
		})
		if err != nil {
			return UploadResult{}, nil, err
		}
		result.VideoURL = url
	}

	tracker.phase(tracker.imageBytes+tracker.videoBytes, 0, 1)
	return result, tracker, nil
}

// ProgressTracker folds per-phase byte fractions into one monotonic percent.
type ProgressTracker struct {
	imageBytes int64
	videoBytes int64
	totalBytes int64
	last       int
	onProgress func(percent int)
}

func newProgressTracker(images []models.MediaFile, video *models.MediaFile, onProgress func(percent int)) *ProgressTracker {
	t := &ProgressTracker{onProgress: onProgress}
	for _, img := range images {
		t.imageBytes += int64(len(img.Data))
	}
	if video != nil {
		t.videoBytes = int64(len(video.Data))
	}
	t.totalBytes = t.imageBytes + t.videoBytes + metadataOverheadBytes
	return t
}

// phase reports progress of one phase: base bytes already completed by prior
// phases plus fraction of this phase's byte share.
func (t *ProgressTracker) phase(phaseBytes, base int64, fraction float64) {
	if t.onProgress == nil || t.totalBytes == 0 {
		return
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	done := float64(base) + float64(phaseBytes)*fraction
	percent := int(done / float64(t.totalBytes) * 100)
	if percent > 100 {
		percent = 100
	}
	if percent > t.last {
		t.last = percent
		t.onProgress(percent)
	}
}

// Finish credits the metadata overhead and pins the bar at 100.
func (t *ProgressTracker) Finish() {
	if t == nil || t.onProgress == nil {
		return
	}
	if t.last < 100 {
		t.last = 100
		t.onProgress(100)
	}
}
