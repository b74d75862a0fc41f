// Package chart draws the per-district word distribution: an echarts donut
// for the browser and a gonum/plot bar chart PNG for static use.
package chart
