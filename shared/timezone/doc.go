// Package timezone resolves all application timestamps against a single
// configured location, so check-in times, receipt dates and audit columns
// agree regardless of the server's local clock.
//
//	now := timezone.Now()                   // current time in the app timezone
//	local := timezone.ToAppTime(someTime)   // convert any time to the app timezone
//	day := timezone.Format(now, "20060102") // format in the app timezone
//
// The location comes from the APP_TIMEZONE environment variable and is
// loaded when the package is imported. Use standard IANA names such as
// "UTC" or "Africa/Nairobi"; an unknown name falls back to UTC.
package timezone
