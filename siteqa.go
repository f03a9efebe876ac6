// Package siteqa turns a website into a queryable knowledgebase.
// It crawls a site to discover its content URLs, extracts each page as
// markdown, indexes the content for semantic search, and answers natural
// language questions about it from the command line.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/, gemini/).
package siteqa
