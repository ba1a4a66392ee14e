package cloud

import "strings"

// recognizedExtensions are the document extensions the consuming encoders
// know how to handle.
var recognizedExtensions = map[string]bool{
	"pdf": true, "doc": true, "docx": true, "xls": true, "xlsx": true,
	"ppt": true, "pptx": true, "txt": true, "csv": true, "rtf": true,
	"odt": true, "ods": true, "odp": true, "md": true,
}

// fileTypeFromName infers a file type from a decoded filename's extension.
// absent is the default when the name carries no extension, unrecognized
// when the extension is not a known document type.
func fileTypeFromName(name, absent, unrecognized string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return absent
	}
	ext := strings.ToLower(name[i+1:])
	if recognizedExtensions[ext] {
		return ext
	}
	return unrecognized
}

// stripTitleSuffixes trims the first matching service decoration from a
// browser tab title.
func stripTitleSuffixes(title string, suffixes ...string) string {
	title = strings.TrimSpace(title)
	for _, s := range suffixes {
		if strings.HasSuffix(title, s) {
			return strings.TrimSpace(strings.TrimSuffix(title, s))
		}
	}
	return title
}
