package i18n

// catalog holds the translation strings per app language.
// English is the fallback for all other languages.
var catalog = map[string]map[string]string{
	LangEnglish: {
		"app.title":             "Al-Furqan",
		"nav.quran":             "Quran",
		"nav.bookmarks":         "Bookmarks",
		"nav.prayer":            "Prayer Times",
		"nav.calendar":          "Calendar",
		"nav.qibla":             "Qibla",
		"nav.hadith":            "Hadith",
		"nav.radio":             "Radio",
		"nav.library":           "Library",
		"nav.settings":          "Settings",
		"common.cancel":         "Cancel",
		"common.close":          "Close",
		"common.retry":          "Retry",
		"common.search":         "Search",
		"common.loading":        "Loading…",
		"common.loadMore":       "Load more",
		"common.failed":         "Something went wrong",
		"reader.continue":       "Continue reading",
		"reader.verses":         "verses",
		"reader.tafsir":         "Tafsir",
		"search.results":        "Search results",
		"player.play":           "Play",
		"player.pause":          "Pause",
		"player.stop":           "Stop",
		"player.next":           "Next ayah",
		"player.previous":       "Previous ayah",
		"bookmarks.empty":       "No bookmarks yet",
		"prayer.today":          "Today's prayer times",
		"prayer.noLocation":     "Set your location in settings first",
		"qibla.direction":       "Qibla direction",
		"settings.appearance":   "Appearance",
		"settings.theme":        "Theme",
		"settings.fontSize":     "Font size",
		"settings.showArabic":   "Show Arabic text",
		"settings.showTrans":    "Show translation",
		"settings.reciter":      "Reciter",
		"settings.language":     "App language",
		"settings.location":     "Location",
		"settings.volume":       "Volume",
		"settings.rate":         "Playback speed",
		"settings.repeat":       "Repeat",
		"settings.translations": "Translations",
		"firstrun.choose":       "Choose your language",
		"document.fallback":     "Use simple viewer",
		"document.page":         "Page",
		"radio.listen":          "Listen",
		"update.available":      "Update available",
	},
	LangBengali: {
		"app.title":         "আল-ফুরকান",
		"nav.quran":         "কুরআন",
		"nav.bookmarks":     "বুকমার্ক",
		"nav.prayer":        "নামাজের সময়",
		"nav.calendar":      "ক্যালেন্ডার",
		"nav.qibla":         "কিবলা",
		"nav.hadith":        "হাদিস",
		"nav.radio":         "রেডিও",
		"nav.library":       "লাইব্রেরি",
		"nav.settings":      "সেটিংস",
		"common.cancel":     "বাতিল",
		"common.close":      "বন্ধ",
		"common.retry":      "আবার চেষ্টা করুন",
		"common.search":     "খুঁজুন",
		"common.loading":    "লোড হচ্ছে…",
		"common.loadMore":   "আরও দেখুন",
		"common.failed":     "কিছু ভুল হয়েছে",
		"reader.continue":   "পড়া চালিয়ে যান",
		"player.play":       "চালান",
		"player.pause":      "বিরতি",
		"player.stop":       "থামান",
		"bookmarks.empty":   "কোনো বুকমার্ক নেই",
		"prayer.today":      "আজকের নামাজের সময়",
		"qibla.direction":   "কিবলার দিক",
		"settings.theme":    "থিম",
		"settings.fontSize": "অক্ষরের আকার",
		"settings.reciter":  "ক্বারী",
		"settings.language": "অ্যাপের ভাষা",
		"settings.location": "অবস্থান",
		"firstrun.choose":   "আপনার ভাষা নির্বাচন করুন",
	},
	LangArabic: {
		"app.title":       "الفرقان",
		"nav.quran":       "القرآن",
		"nav.bookmarks":   "العلامات",
		"nav.prayer":      "مواقيت الصلاة",
		"nav.calendar":    "التقويم",
		"nav.qibla":       "القبلة",
		"nav.hadith":      "الحديث",
		"nav.radio":       "الإذاعة",
		"nav.library":     "المكتبة",
		"nav.settings":    "الإعدادات",
		"common.cancel":   "إلغاء",
		"common.close":    "إغلاق",
		"common.retry":    "إعادة المحاولة",
		"common.search":   "بحث",
		"common.loading":  "جارٍ التحميل…",
		"common.loadMore": "المزيد",
		"player.play":     "تشغيل",
		"player.pause":    "إيقاف مؤقت",
		"player.stop":     "إيقاف",
		"prayer.today":    "مواقيت الصلاة اليوم",
		"qibla.direction": "اتجاه القبلة",
		"firstrun.choose": "اختر لغتك",
	},
}
