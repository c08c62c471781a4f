// Package cli implements auditctl, a one-shot command line client for the
// audit server. Each invocation runs a single command:
//
//	auditctl [-a addr] [-timeout d] [-wait d] <command> [args]
//
// Commands:
//
//	ping                                 check the server is serving
//	create <product_type> <product name>  create a dossier (prompts for manufacturer)
//	dossier <dossier_id>                  show a dossier and its checklist items
//	upload <dossier_id> <file> [item_id]  upload a PDF or DOCX and confirm it
//	run <dossier_id> [stage]              run an audit and wait for it to finish
//	cancel <audit_id>                     cancel a running audit
//	list <dossier_id>                     list audits of a dossier
//	export <audit_id> [path]              save the audit workbook (.xlsx)
//	submit <dossier_id>                   submit a ready dossier
//	revert <dossier_id>                   send a dossier back to draft
package cli
