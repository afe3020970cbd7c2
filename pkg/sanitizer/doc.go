// Package sanitizer normalises the text that goes into generated artifacts:
// names become email local-part components, numbers are laid out in the
// common Nigerian phone formats.
//
//	sanitizer.EmailPart("Adébáyọ̀")                                   // "adebayo"
//	sanitizer.TitleCase("  chukwu  emeka ")                          // "Chukwu Emeka"
//	sanitizer.FormatPhone("08031234567", sanitizer.PhoneInternational) // "+2348031234567"
//
// Unicode handling relies on golang.org/x/text. All helpers are stateless and
// safe for concurrent use.
package sanitizer
