// Alfurqan is a desktop companion app for Quran reading, hadith study
// and prayer times.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	fyneapp "fyne.io/fyne/v2/app"

	"fyne.io/fyne/v2"
	"github.com/gohugoio/httpcache"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/juju/mutex/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/alfurqan/alfurqan/internal/app/documentservice"
	"github.com/alfurqan/alfurqan/internal/app/hadithservice"
	"github.com/alfurqan/alfurqan/internal/app/libraryservice"
	"github.com/alfurqan/alfurqan/internal/app/pcache"
	"github.com/alfurqan/alfurqan/internal/app/playerservice"
	"github.com/alfurqan/alfurqan/internal/app/prayerservice"
	"github.com/alfurqan/alfurqan/internal/app/quranservice"
	"github.com/alfurqan/alfurqan/internal/app/reminderservice"
	"github.com/alfurqan/alfurqan/internal/app/settings"
	"github.com/alfurqan/alfurqan/internal/app/storage"
	"github.com/alfurqan/alfurqan/internal/app/ui"
	"github.com/alfurqan/alfurqan/internal/app/userdata"
	"github.com/alfurqan/alfurqan/internal/httptransport"
	"github.com/alfurqan/alfurqan/internal/mediaplayer"
)

const (
	appID          = "org.alfurqan.alfurqan"
	userAgent      = "alfurqan (https://github.com/alfurqan/alfurqan)"
	cacheCleanup   = 30 * time.Minute
	apiCacheExpiry = 24 * time.Hour
)

// defined flags
var (
	levelFlag        logLevelFlag
	deleteDataFlag   = flag.Bool("delete-data", false, "Delete all user files of the app")
	hadithAPIKeyFlag = flag.String("hadith-api-key", "", "API key for hadithapi.com (overrides HADITH_API_KEY)")
	logFileFlag      = flag.Bool("logfile", true, "Write logs to a file instead of the console")
	showDirsFlag     = flag.Bool("show-dirs", false, "Show directories where user data is stored")
)

func init() {
	flag.Var(&levelFlag, "loglevel", "set log level")
}

func main() {
	flag.Parse()
	fyneApp := fyneapp.NewWithID(appID)
	ad := newAppDirs(fyneApp)
	if *showDirsFlag {
		fmt.Printf("Database: %s\n", ad.data)
		fmt.Printf("Logs: %s\n", ad.log)
		fmt.Printf("Settings: %s\n", ad.settings)
		return
	}
	if *deleteDataFlag {
		fmt.Print("Are you sure you want to delete all user files of this app (y/N)?")
		var input string
		fmt.Scanln(&input)
		if strings.ToLower(input) == "y" {
			if err := ad.deleteAll(); err != nil {
				log.Fatal(err)
			}
			fmt.Println("User files deleted")
		} else {
			fmt.Println("Aborted")
		}
		return
	}

	st := settings.New(fyneApp.Preferences())
	if levelFlag.isSet {
		slog.SetLogLoggerLevel(levelFlag.value)
	} else {
		slog.SetLogLoggerLevel(st.LogLevelSlog())
	}
	if *logFileFlag {
		fn, err := ad.initLogFile()
		if err != nil {
			log.Fatal(err)
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   fn,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		})
	}

	releaser, err := acquireSingleInstance()
	if err != nil {
		log.Fatalf("Another instance of the app is already running: %s", err)
	}
	defer releaser.Release()

	dsn, err := ad.initDSN()
	if err != nil {
		log.Fatal(err)
	}
	db, err := storage.ConnectDB(dsn)
	if err != nil {
		log.Fatalf("Failed to initialize database %s: %s", dsn, err)
	}
	defer db.Close()
	store := storage.New(db)
	pc := pcache.New(store, cacheCleanup)

	httpClient := &http.Client{
		Transport: httptransport.LoggedTransport{UserAgent: userAgent},
	}
	apiClient := newAPIClient(pc)

	quran := quranservice.New(quranservice.Params{HTTPClient: apiClient})
	prayer := prayerservice.New(prayerservice.Params{HTTPClient: apiClient})
	hadith := hadithservice.New(hadithservice.Params{
		APIKey:     hadithAPIKey(),
		HTTPClient: apiClient,
	})
	library := libraryservice.New(libraryservice.Params{HTTPClient: apiClient})
	document := documentservice.New(documentservice.Params{HTTPClient: httpClient})

	ctx := context.Background()
	ud, err := userdata.New(ctx, store)
	if err != nil {
		log.Fatalf("Failed to load user data: %s", err)
	}

	mp, err := mediaplayer.New(mediaplayer.Params{HTTPClient: httpClient})
	if err != nil {
		log.Fatalf("Failed to initialize audio output: %s", err)
	}
	player := playerservice.New(playerservice.Params{
		MediaPlayer: mp,
		Settings:    st,
		ResolveURL: func(surahID, ayahID int) string {
			r := quranservice.ReciterByID(st.ReciterID())
			return quranservice.AudioURL(r, surahID, ayahID)
		},
	})

	reminders := reminderservice.New(reminderservice.Params{
		Source:   prayer,
		Location: st,
		Notify: func(title, body string) {
			fyneApp.SendNotification(fyne.NewNotification(title, body))
		},
	})
	if err := reminders.Start(ctx); err != nil {
		slog.Error("Failed to start prayer reminders", "error", err)
	}
	defer reminders.Stop()

	u := ui.NewUI(ui.Params{
		FyneApp:         fyneApp,
		Settings:        st,
		UserData:        ud,
		PlayerService:   player,
		StreamPlayer:    mp,
		QuranService:    quran,
		PrayerService:   prayer,
		HadithService:   hadith,
		LibraryService:  library,
		DocumentService: document,
		AppVersion:      fyneApp.Metadata().Version,
	})
	u.CacheService = pc
	u.Init()
	u.ShowAndRun()
}

// newAPIClient returns the http client used for the remote APIs.
// Responses are cached in the database and transient failures are retried.
func newAPIClient(pc *pcache.PCache) *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = slog.Default()
	rc.HTTPClient.Transport = &httpcache.Transport{
		Cache:               newCacheAdapter(pc, "api-", apiCacheExpiry),
		MarkCachedResponses: true,
		Transport:           httptransport.LoggedTransport{UserAgent: userAgent},
	}
	return rc.StandardClient()
}

func hadithAPIKey() string {
	if *hadithAPIKeyFlag != "" {
		return *hadithAPIKeyFlag
	}
	return os.Getenv("HADITH_API_KEY")
}

// systemClock provides the wall clock for the instance mutex.
type systemClock struct{}

func (systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// acquireSingleInstance ensures only one instance of the app runs
// per machine. The returned releaser must be released on shutdown.
func acquireSingleInstance() (mutex.Releaser, error) {
	return mutex.Acquire(mutex.Spec{
		Name:    "alfurqan",
		Clock:   systemClock{},
		Delay:   100 * time.Millisecond,
		Timeout: 250 * time.Millisecond,
	})
}
