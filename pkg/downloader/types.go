package downloader

type Downloader struct {
	cacheDir string
}
