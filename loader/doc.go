// Package loader decodes the two contact-data input formats.
//
//   - Delimited contact records (ReadContacts, ReadContactFile, ReadContactFiles):
//     one row per observed contact, columns h1,m1,h2,m2,duration,day,hour and
//     optionally age1,sex1,age2,sex2. Several files are concatenated in order.
//   - GEXF 1.x graphs (ReadGEXF, ReadGEXFFile): an already aggregated,
//     attributed graph returned as a contact.Aggregation.
//
// Errors wrap ErrMissingColumn, ErrMalformedRecord or ErrMalformedGraph with
// the file name and line; nothing is partially returned on failure.
package loader
