package automation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
)

// NoData is returned instead of a file path when the portal has no new
// price list to download.
const NoData = "NO_DATA"

// DownloadPriceList logs into the supplier portal and downloads the current
// price-list CSV into saveDir, returning the saved path.
func DownloadPriceList(portalURL, userID, password, saveDir string) (string, error) {
	if _, err := os.Stat(saveDir); os.IsNotExist(err) {
		if err := os.MkdirAll(saveDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create save directory: %v", err)
		}
	}

	// Leakless(false) avoids antivirus quarantine of the helper binary on
	// the shop PCs this runs on.
	u := launcher.New().
		Headless(false).
		Leakless(false).
		MustLaunch()

	browser := rod.New().ControlURL(u).MustConnect()
	defer browser.MustClose()

	fmt.Println("Opening supplier portal...")
	page := browser.MustPage(portalURL)
	page.MustWaitStable()

	fmt.Println("Entering login credentials...")
	if err := rod.Try(func() {
		page.MustElement("[name='userid']").MustInput(userID)
	}); err != nil {
		return "", fmt.Errorf("user id field not found: %v", err)
	}
	if err := rod.Try(func() {
		page.MustElement("[name='password']").MustInput(password)
	}); err != nil {
		return "", fmt.Errorf("password field not found: %v", err)
	}

	loginBtn, err := page.ElementR("input, button, a", "Login|Sign in")
	if err == nil {
		loginBtn.MustClick()
	} else {
		page.KeyActions().Press(input.Enter).MustDo()
	}
	page.MustWaitStable()

	fmt.Println("Navigating to the price list page...")
	if err := rod.Try(func() {
		page.MustElementR("a, span, div", "Price List").MustClick()
	}); err != nil {
		return "", fmt.Errorf("price list menu not found (login may have failed): %v", err)
	}
	page.MustWaitStable()

	wait := browser.MustWaitDownload()
	go page.MustHandleDialog()

	fmt.Println("Clicking the download button...")
	dlBtn, err := page.ElementR("input, button, a", "Download")
	if err != nil {
		return "", fmt.Errorf("download button not found: %v", err)
	}
	dlBtn.MustClick()

	var fileData []byte
	resultChan := make(chan string)

	go func() {
		defer func() {
			_ = recover()
		}()
		fileData = wait()
		resultChan <- "downloaded"
	}()

	// Some portals render "no updates available" instead of serving a file.
	go func() {
		for i := 0; i < 60; i++ {
			time.Sleep(500 * time.Millisecond)
			if body, err := page.Element("body"); err == nil {
				text, _ := body.Text()
				if containsAny(text, "No updates", "no new price list") {
					resultChan <- "no_data"
					return
				}
			}
		}
	}()

	select {
	case res := <-resultChan:
		if res == "no_data" {
			return NoData, nil
		}
	case <-time.After(60 * time.Second):
		return "", fmt.Errorf("timed out waiting for download or a portal message")
	}

	if len(fileData) == 0 {
		return "", fmt.Errorf("downloaded file is empty")
	}

	fileName := fmt.Sprintf("PRICELIST_%s.csv", time.Now().Format("20060102150405"))
	destPath := filepath.Join(saveDir, fileName)
	if err := os.WriteFile(destPath, fileData, 0644); err != nil {
		return "", fmt.Errorf("failed to write downloaded file: %v", err)
	}

	fmt.Printf("Download complete: %s\n", destPath)
	return destPath, nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
