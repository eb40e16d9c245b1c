/*
Package requisite turns free-text prerequisite descriptions into a
requirement.Set.

The text is normalized, then read in three passes:

 1. Clauses. A term-completion clause ("Hasta 3° semestre aprobado") and a
    credit clause ("220 créditos") are recognised by pattern, turned into
    thresholds and blanked out of the text.
 2. Course names. Connector tokens ("+", ";", "y", "e", "and") are dropped,
    then the longest known course name or alias occurring on word boundaries
    is extracted and blanked, repeatedly, until nothing else matches.
 3. Residue. Whatever text is left is split on commas, connectors and blanked
    spans. Each remaining fragment that still contains a letter is kept as a
    reference to a course the catalog does not know, so the course stays
    locked and a diagnostic explains why.

Parsing never fails. Unreadable clauses and unknown names become
requirements that never hold, plus a Diagnostic each.
*/
package requisite
